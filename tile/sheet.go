package tile

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	errBadHeight = errors.New("tile: tile height must be 8 or 16")
	errBadSize   = errors.New("tile: image must be at least 1 by 1 pixels")
)

// Sheet holds the tiles of one image along with the tilemap that places
// them on the grid.
type Sheet struct {
	// Width and Height are the original image dimensions in pixels.
	Width, Height int
	// Cols and Rows are the grid dimensions in tiles.
	Cols, Rows int
	// TileHeight is either Height or TallHeight.
	TileHeight int
	// Count is the number of tiles in use. It starts at Cols*Rows and
	// only ever shrinks.
	Count int
	// Map holds Cols*Rows tile indices in row-major order, each less
	// than Count.
	Map []int

	data []byte
}

// New returns an empty sheet large enough for a w by h image cut into tiles
// of the given height. Every pixel starts as color 0 and the tilemap is the
// identity.
func New(w, h, tileHeight int) (*Sheet, error) {
	if tileHeight != Height && tileHeight != TallHeight {
		return nil, errBadHeight
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w, got %dx%d", errBadSize, w, h)
	}

	s := &Sheet{
		Width:      w,
		Height:     h,
		Cols:       (w + Width - 1) / Width,
		Rows:       (h + tileHeight - 1) / tileHeight,
		TileHeight: tileHeight,
	}
	s.Count = s.Cols * s.Rows
	s.data = make([]byte, s.Count*s.TileSize())

	s.Map = make([]int, s.Count)
	for t := range s.Map {
		s.Map[t] = t
	}

	return s, nil
}

// TileSize returns the number of bytes in one tile.
func (s *Sheet) TileSize() int {
	return s.TileHeight * bytesPerRow
}

// Bytes returns the encoded data of the tiles in use.
func (s *Sheet) Bytes() []byte {
	return s.data[:s.Count*s.TileSize()]
}

// Tile returns the encoded data of tile t.
func (s *Sheet) Tile(t int) []byte {
	size := s.TileSize()
	return s.data[t*size : (t+1)*size]
}

// Row returns the low and high bit planes of row y of tile t.
func (s *Sheet) Row(t, y int) (byte, byte) {
	i := t*s.TileSize() + y*bytesPerRow
	return s.data[i], s.data[i+1]
}

func (s *Sheet) valid(t, x, y int) bool {
	return t >= 0 && t < s.Count && x >= 0 && x < Width && y >= 0 && y < s.TileHeight
}

// SetPixel sets pixel (x, y) of tile t to color c. Anything out of range is
// ignored.
func (s *Sheet) SetPixel(t, x, y int, c uint8) {
	if !s.valid(t, x, y) || c >= Colors {
		return
	}

	i := t*s.TileSize() + y*bytesPerRow
	mask := byte(0x80) >> uint(x)

	s.data[i] &^= mask
	s.data[i+1] &^= mask
	if c&1 != 0 {
		s.data[i] |= mask
	}
	if c&2 != 0 {
		s.data[i+1] |= mask
	}
}

// Pixel returns the color of pixel (x, y) of tile t.
func (s *Sheet) Pixel(t, x, y int) uint8 {
	if !s.valid(t, x, y) {
		return 0
	}
	lo, hi := s.Row(t, y)
	shift := uint(7 - x)
	return lo>>shift&1 | (hi>>shift&1)<<1
}

// ColorAt returns the color displayed at image pixel (x, y), looking the
// tile up through the tilemap. Pixels in the padding are included.
func (s *Sheet) ColorAt(x, y int) uint8 {
	cx, cy := x/Width, y/s.TileHeight
	if x < 0 || y < 0 || cx >= s.Cols || cy >= s.Rows {
		return 0
	}
	return s.Pixel(s.Map[cy*s.Cols+cx], x%Width, y%s.TileHeight)
}

// Equal reports whether tiles a and b hold identical data. A tile is never
// equal to itself.
func (s *Sheet) Equal(a, b int) bool {
	if a == b || a < 0 || b < 0 || a >= s.Count || b >= s.Count {
		return false
	}
	return bytes.Equal(s.Tile(a), s.Tile(b))
}

func (s *Sheet) replace(from, to int) {
	for i, t := range s.Map {
		if t == from {
			s.Map[i] = to
		}
	}
}
