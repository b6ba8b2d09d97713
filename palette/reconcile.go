package palette

import (
	"errors"
	"fmt"
)

// MaxColors is the largest source palette an indexed PNG can carry.
const MaxColors = 256

var errPaletteSize = errors.New("palette: source palette must have between 1 and 256 colors")

// Options controls how a source palette is reconciled.
type Options struct {
	// Sprite reserves target index 0 for the transparent color.
	Sprite bool
	// Grayscale maps every source color onto the nearest of the four
	// standard shades.
	Grayscale bool
	// Sort orders the target palette from light to dark.
	Sort bool
	// Transparency selects the transparent source color for sprites.
	Transparency Transparency
}

// Result holds the outcome of a reconciliation.
type Result struct {
	// Palette is the four color target palette.
	Palette Palette
	// Map converts a source palette index into a target palette index.
	Map []uint8
	// Transparent is the resolved transparent source index, only
	// meaningful for sprites.
	Transparent int
	// Grayscale is set when the grayscale path was taken.
	Grayscale bool
	// Warnings collects any non-fatal problems encountered.
	Warnings []string
}

// Reconcile builds the target palette for src and the map from each source
// index onto it. Every entry of the map is less than Size and, for sprites,
// the transparent source color always maps to 0.
func Reconcile(src []Color, o Options) (*Result, error) {
	n := len(src)
	if n == 0 || n > MaxColors {
		return nil, fmt.Errorf("%w, got %d", errPaletteSize, n)
	}

	r := &Result{
		Map: make([]uint8, n),
	}
	for i := range r.Map {
		r.Map[i] = uint8(i)
	}

	if o.Sprite {
		var warning string
		r.Transparent, warning = o.Transparency.Resolve(src)
		if warning != "" {
			r.Warnings = append(r.Warnings, warning)
		}
	}

	// Too many colors for a straight copy, collapse onto the four shades
	if o.Grayscale || n > Size {
		r.Palette = Grayscale()
		r.Grayscale = true
		for c := range src {
			if o.Sprite && c == r.Transparent {
				r.Map[c] = 0
			} else {
				r.Map[c] = Nearest(src[c].Lightness(), o.Sprite)
			}
		}
		return r, nil
	}

	// Remaining entries are padded with black
	work := make([]Color, Size)
	copy(work, src)

	base := 0
	if o.Sprite {
		// Move the transparent color into slot 0
		t := r.Transparent
		work[0], work[t] = work[t], work[0]
		swapIndices(r.Map, 0, uint8(t))
		base = 1
	}

	if o.Sort {
		if n < Size {
			for c := base; c < n; c++ {
				p := int(Nearest(work[c].Lightness(), o.Sprite))
				work[c], work[p] = work[p], work[c]
				swapIndices(r.Map, uint8(c), uint8(p))
			}
		} else {
			sortByLightness(work, r.Map, base)
		}
	}

	copy(r.Palette[:], work)

	return r, nil
}

// sortByLightness bubble sorts p[start:] from light to dark. Every swap of
// two entries is mirrored in m so it keeps pointing at the same colors.
func sortByLightness(p []Color, m []uint8, start int) {
	n := len(p)
	for n > start {
		last := start
		for i := start + 1; i < n; i++ {
			if p[i-1].Lightness() < p[i].Lightness() {
				swapIndices(m, uint8(i-1), uint8(i))
				p[i-1], p[i] = p[i], p[i-1]
				last = i
			}
		}
		n = last
	}
}
