/*
Package palette implements the Game Boy palette model and the reconciliation
of an arbitrary indexed source palette onto it.

The Game Boy renders from exactly four shades, index 0 being the lightest
and index 3 the darkest. On the Game Boy Color each of the four entries is a
15-bit color packed as 0BBBBBGGGGGRRRRR. Sprites reserve index 0 for
transparency so only indices 1 to 3 are visible.
*/
package palette

import "math"

// Lightness values of the four Game Boy shades.
const (
	White     = 255
	LightGray = 172
	DarkGray  = 82
	Black     = 0
)

// Size is the number of entries in a Game Boy palette.
const Size = 4

var shades = [Size]uint8{White, LightGray, DarkGray, Black}

// Color is a 24-bit RGB palette entry.
type Color struct {
	R, G, B uint8
}

// Lightness returns the luma approximation 0.2989R + 0.5870G + 0.1140B
// rounded to the nearest integer.
func (c Color) Lightness() uint8 {
	l := math.Round(0.2989*float64(c.R) + 0.5870*float64(c.G) + 0.1140*float64(c.B))
	if l > 255 {
		return 255
	}
	return uint8(l)
}

// Word returns the color packed as a 15-bit Game Boy Color palette word.
func (c Color) Word() uint16 {
	return uint16(c.R>>3) | uint16(c.G>>3)<<5 | uint16(c.B>>3)<<10
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Gray returns an opaque gray with all channels set to v.
func Gray(v uint8) Color {
	return Color{v, v, v}
}

// Palette is a Game Boy target palette.
type Palette [Size]Color

// Grayscale returns the standard four shade palette.
func Grayscale() Palette {
	return Palette{Gray(White), Gray(LightGray), Gray(DarkGray), Gray(Black)}
}

// Words returns every entry as a 15-bit palette word.
func (p Palette) Words() [Size]uint16 {
	var w [Size]uint16
	for i, c := range p {
		w[i] = c.Word()
	}
	return w
}

// Nearest returns the index of the shade closest to the lightness l, ties
// going to the lower index. For sprites white is never a candidate and the
// result is in the range 1 to 3.
func Nearest(l uint8, sprite bool) uint8 {
	first := 0
	if sprite {
		first = 1
	}

	nearest := first
	best := distance(shades[first], l)
	for i := first + 1; i < Size; i++ {
		if d := distance(shades[i], l); d < best {
			best, nearest = d, i
		}
	}
	return uint8(nearest)
}

func distance(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Find returns the index of the first entry in p matching c exactly, or -1.
func Find(p []Color, c Color) int {
	for i := range p {
		if p[i] == c {
			return i
		}
	}
	return -1
}

// swapIndices exchanges every occurrence of a and b in m.
func swapIndices(m []uint8, a, b uint8) {
	if a == b {
		return
	}
	for i, v := range m {
		switch v {
		case a:
			m[i] = b
		case b:
			m[i] = a
		}
	}
}
