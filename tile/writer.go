package tile

import (
	"errors"
	"fmt"
)

var (
	errBadDepth    = errors.New("tile: bit depth must be 1, 2, 4 or 8")
	errNotEnough   = errors.New("tile: not enough pixel data")
	errBadIndex    = errors.New("tile: pixel index outside of palette map")
	errBadGeometry = errors.New("tile: bitmap dimensions must be positive")
)

// Bitmap is an indexed image with its pixels packed into a continuous
// row-major bit stream, Depth bits per pixel, leftmost pixel in the most
// significant bits of each byte. Rows are not padded.
type Bitmap struct {
	Width, Height int
	Depth         int
	Pix           []byte
}

// NewBitmap returns a zeroed w by h bitmap of the given depth.
func NewBitmap(w, h, depth int) (*Bitmap, error) {
	if !validDepth(depth) {
		return nil, errBadDepth
	}
	if w < 1 || h < 1 {
		return nil, errBadGeometry
	}
	return &Bitmap{
		Width:  w,
		Height: h,
		Depth:  depth,
		Pix:    make([]byte, (w*h*depth+7)/8),
	}, nil
}

func validDepth(depth int) bool {
	switch depth {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

func (b *Bitmap) offset(x, y int) (int, uint, byte) {
	bit := (y*b.Width + x) * b.Depth
	return bit >> 3, uint(8 - b.Depth - bit&7), byte(1<<uint(b.Depth) - 1)
}

// Index returns the palette index of pixel (x, y).
func (b *Bitmap) Index(x, y int) uint8 {
	i, shift, mask := b.offset(x, y)
	return b.Pix[i] >> shift & mask
}

// SetIndex sets the palette index of pixel (x, y), truncated to Depth bits.
func (b *Bitmap) SetIndex(x, y int, v uint8) {
	i, shift, mask := b.offset(x, y)
	b.Pix[i] = b.Pix[i]&^(mask<<shift) | (v&mask)<<shift
}

// Rasterize cuts b into tiles of the given height, converting every pixel
// through m from a source palette index to a tile color. Pixels in the
// padding beyond the image are color 0.
func Rasterize(b *Bitmap, m []uint8, tileHeight int) (*Sheet, error) {
	if !validDepth(b.Depth) {
		return nil, errBadDepth
	}
	if b.Width < 1 || b.Height < 1 {
		return nil, errBadGeometry
	}
	if len(b.Pix)*8 < b.Width*b.Height*b.Depth {
		return nil, errNotEnough
	}

	s, err := New(b.Width, b.Height, tileHeight)
	if err != nil {
		return nil, err
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := b.Index(x, y)
			if int(i) >= len(m) {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", errBadIndex, i, x, y)
			}
			if m[i] >= Colors {
				return nil, fmt.Errorf("%w: %d maps to %d", errBadIndex, i, m[i])
			}

			t := (y/tileHeight)*s.Cols + x/Width
			s.SetPixel(t, x%Width, y%tileHeight, m[i])
		}
	}

	return s, nil
}
