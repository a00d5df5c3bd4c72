package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a data-file color to a tcell.Color. It accepts hex
// ("#40FF40" or "40FF40") and tcell color names ("olive", "darkred").
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// colorOr parses s, returning fallback when it is missing or malformed.
func colorOr(s string, fallback tcell.Color) tcell.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
