package battle

import "time"

// DefaultBannerDuration is how long a banner stays on screen.
const DefaultBannerDuration = 2 * time.Second

// Banner is a short announcement that fades out linearly.
// It is re-armed by events and counted down by the frame clock.
type Banner struct {
	Text      string
	Remaining time.Duration
	Duration  time.Duration
}

// Arm shows text for the given duration, replacing any current banner.
func (b *Banner) Arm(text string, d time.Duration) {
	if d <= 0 {
		d = DefaultBannerDuration
	}
	b.Text = text
	b.Duration = d
	b.Remaining = d
}

// Advance counts the banner down by the elapsed frame time.
func (b *Banner) Advance(dt time.Duration) {
	if b.Remaining <= 0 || dt <= 0 {
		return
	}
	b.Remaining -= dt
	if b.Remaining < 0 {
		b.Remaining = 0
	}
}

// Visible returns true while the banner has time left.
func (b Banner) Visible() bool {
	return b.Remaining > 0 && b.Text != ""
}

// Opacity returns 1 when freshly armed, falling linearly to 0 at expiry.
func (b Banner) Opacity() float64 {
	if !b.Visible() || b.Duration <= 0 {
		return 0
	}
	return float64(b.Remaining) / float64(b.Duration)
}
