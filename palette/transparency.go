package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadTransparency = errors.New("palette: transparent color must be an index or #RRGGBB")

// Transparency selects the source color used as the transparent sprite
// color, either by palette index or by RGB value.
type Transparency struct {
	rgb   bool
	index int
	color Color
}

// TransparentIndex selects source palette entry i.
func TransparentIndex(i int) Transparency {
	return Transparency{index: i}
}

// TransparentColor selects the first source palette entry equal to c.
func TransparentColor(c Color) Transparency {
	return Transparency{rgb: true, color: c}
}

// ParseTransparency parses either a decimal palette index or a #RRGGBB color.
func ParseTransparency(s string) (Transparency, error) {
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 16, 24)
		if err != nil {
			return Transparency{}, fmt.Errorf("%w: %q", errBadTransparency, s)
		}
		return TransparentColor(Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}), nil
	}

	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return Transparency{}, fmt.Errorf("%w: %q", errBadTransparency, s)
	}
	return TransparentIndex(i), nil
}

// IsColor reports whether the transparency was given as an RGB value.
func (t Transparency) IsColor() bool {
	return t.rgb
}

// String renders the transparency as either the index or RGB(r, g, b).
func (t Transparency) String() string {
	if t.rgb {
		return fmt.Sprintf("RGB(%d, %d, %d)", t.color.R, t.color.G, t.color.B)
	}
	return strconv.Itoa(t.index)
}

// Resolve returns the source palette index selected by t. An RGB value not
// present in p, or an index past the end of p, resolves to 0 and a warning
// is returned.
func (t Transparency) Resolve(p []Color) (int, string) {
	if t.rgb {
		if i := Find(p, t.color); i >= 0 {
			return i, ""
		}
		return 0, fmt.Sprintf("RGB color #%02x%02x%02x not found, defaulting to color 0", t.color.R, t.color.G, t.color.B)
	}
	if t.index >= len(p) {
		return 0, fmt.Sprintf("transparent color #%03d is invalid, the image has %d colors only, defaulting to color 0", t.index, len(p))
	}
	return t.index, ""
}
