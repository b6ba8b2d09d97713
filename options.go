package pngb

import (
	"github.com/bodgit/pngb/palette"
	"github.com/bodgit/pngb/tile"
)

// Target is the Game Boy layer the data is generated for.
type Target int

// Supported targets.
const (
	Background Target = iota
	Window
	Sprite
	TallSprite
)

func (t Target) String() string {
	switch t {
	case Background:
		return "BKG"
	case Window:
		return "WIN"
	case Sprite:
		return "SPRITE (8x8)"
	case TallSprite:
		return "SPRITE (8x16)"
	}
	return "unknown"
}

// IsSprite reports whether t is either sprite size.
func (t Target) IsSprite() bool {
	return t == Sprite || t == TallSprite
}

// TileHeight returns the height in pixels of a tile for t.
func (t Target) TileHeight() int {
	if t == TallSprite {
		return tile.TallHeight
	}
	return tile.Height
}

// Options controls the conversion and the generated code.
type Options struct {
	Target Target

	// Transparency is the transparent color for sprites.
	Transparency palette.Transparency

	Grayscale     bool
	CreatePalette bool
	SortPalette   bool
	CreateMap     bool
	TestCode      bool
	TileReduction bool

	// PaletteNumber is written as the attribute of every tile, 0 to 7.
	PaletteNumber int
	// BaseIndex is the index of the first tile or sprite, 0 to 255.
	BaseIndex int
	// Name prefixes every generated symbol.
	Name string
}

// DefaultOptions returns the options used when nothing is specified.
func DefaultOptions() Options {
	return Options{
		Target:       Background,
		Transparency: palette.TransparentIndex(0),
		BaseIndex:    1,
		Name:         "gbpic",
	}
}
