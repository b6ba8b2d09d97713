package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/bodgit/pngb/palette"
	"github.com/bodgit/pngb/tile"
)

var (
	errNotPNG     = errors.New("image: not a PNG file")
	errNotIndexed = errors.New("image: PNG colortype 3 (indexed, 256 colors max) expected")
	errNoPalette  = errors.New("image: PNG has no palette")
)

// Indexed is a decoded indexed image.
type Indexed struct {
	tile.Bitmap

	// Palette is the source palette, between 1 and 256 colors.
	Palette []palette.Color
}

type header struct {
	width, height uint32
	depth         uint8
	colorType     uint8
}

func readHeader(b []byte) (header, error) {
	// Signature, chunk length and type, then the IHDR data
	if len(b) < len(pngHeader)+8+ihdrLength || string(b[:len(pngHeader)]) != pngHeader {
		return header{}, errNotPNG
	}
	b = b[len(pngHeader):]
	if binary.BigEndian.Uint32(b) != ihdrLength || string(b[4:8]) != "IHDR" {
		return header{}, errNotPNG
	}
	b = b[8:]

	return header{
		width:     binary.BigEndian.Uint32(b[0:]),
		height:    binary.BigEndian.Uint32(b[4:]),
		depth:     b[8],
		colorType: b[9],
	}, nil
}

// Decode reads an indexed PNG from r.
func Decode(r io.Reader) (*Indexed, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	h, err := readHeader(b)
	if err != nil {
		return nil, err
	}
	if h.colorType != colorTypeIndexed {
		return nil, fmt.Errorf("%w, got colortype %d", errNotIndexed, h.colorType)
	}

	m, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	pm, ok := m.(*image.Paletted)
	if !ok {
		return nil, errNotIndexed
	}
	if len(pm.Palette) == 0 {
		return nil, errNoPalette
	}

	bounds := pm.Bounds()
	bm, err := tile.NewBitmap(bounds.Dx(), bounds.Dy(), int(h.depth))
	if err != nil {
		return nil, err
	}

	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			bm.SetIndex(x, y, pm.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	p := make([]palette.Color, len(pm.Palette))
	for i, c := range pm.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		p[i] = palette.Color{R: n.R, G: n.G, B: n.B}
	}

	return &Indexed{
		Bitmap:  *bm,
		Palette: p,
	}, nil
}
