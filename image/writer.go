package image

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/bodgit/pngb/palette"
	"github.com/bodgit/pngb/tile"
	"golang.org/x/image/draw"
)

var errBadScale = errors.New("image: scale must be at least 1")

// Render draws the tiles of s, placed by the tilemap and colored with p, at
// the original image size. When transparent is set entry 0 of the palette
// is fully transparent.
func Render(s *tile.Sheet, p palette.Palette, transparent bool) *image.Paletted {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	if transparent {
		cp[0] = color.NRGBA{R: p[0].R, G: p[0].G, B: p[0].B}
	}

	m := image.NewPaletted(image.Rect(0, 0, s.Width, s.Height), cp)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			m.SetColorIndex(x, y, s.ColorAt(x, y))
		}
	}
	return m
}

// Encode writes a preview of s to w as a PNG image, each pixel scaled up to
// a scale by scale block.
func Encode(w io.Writer, s *tile.Sheet, p palette.Palette, transparent bool, scale int) error {
	if scale < 1 {
		return errBadScale
	}

	m := Render(s, p, transparent)
	if scale > 1 {
		dst := image.NewPaletted(image.Rect(0, 0, s.Width*scale, s.Height*scale), m.Palette)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
		m = dst
	}

	return png.Encode(w, m)
}
