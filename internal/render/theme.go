package render

import (
	"fmt"
	"strconv"
	"strings"

	"go-resume-builder/internal/domain"
)

// Shades holds a theme color and its derived accents as CSS color strings.
type Shades struct {
	Base    string
	Lighter string
	Darker  string
}

// ThemeShades derives lighter and darker accents from a #RRGGBB theme by
// clamping each channel by a fixed offset (+40 light, -30 dark). Malformed
// values fall back to the default theme.
func ThemeShades(hex string) Shades {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		hex = domain.DefaultTheme
		r, g, b, _ = parseHexColor(hex)
	}
	return Shades{
		Base:    hex,
		Lighter: fmt.Sprintf("rgb(%d, %d, %d)", clamp(r+40), clamp(g+40), clamp(b+40)),
		Darker:  fmt.Sprintf("rgb(%d, %d, %d)", clamp(r-30), clamp(g-30), clamp(b-30)),
	}
}

// StripHash returns the 6-digit hex without the leading #, the form DOCX
// color attributes expect. Malformed values fall back to the default theme.
func StripHash(hex string) string {
	if _, _, _, ok := parseHexColor(hex); !ok {
		hex = domain.DefaultTheme
	}
	return strings.TrimPrefix(hex, "#")
}

func parseHexColor(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	channels := [3]int{}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = int(v)
	}
	return channels[0], channels[1], channels[2], true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
