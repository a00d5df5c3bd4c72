package dice

// Scripted is a Source that replays fixed Intn results in order.
// Shuffle leaves the slice order untouched. Once the script is exhausted
// Intn returns 0.
type Scripted struct {
	Values []int
	next   int
}

// NewScripted creates a scripted source returning values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{Values: values}
}

// Intn returns the next scripted value, clamped to [0, n).
func (s *Scripted) Intn(n int) int {
	if s.next >= len(s.Values) || n <= 0 {
		return 0
	}
	v := s.Values[s.next]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Shuffle is a no-op.
func (s *Scripted) Shuffle(n int, swap func(i, j int)) {}

// Remaining returns how many scripted values have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.Values) - s.next
}

var _ Source = (*Scripted)(nil)
