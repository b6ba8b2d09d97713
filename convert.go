package pngb

import (
	"fmt"
	"os"

	"github.com/bodgit/pngb/image"
	"github.com/bodgit/pngb/palette"
	"github.com/bodgit/pngb/tile"
)

// Picture is the converted image.
type Picture struct {
	*tile.Sheet

	// Palette is the four color target palette.
	Palette palette.Palette
	// Words is Palette packed as 15-bit palette words.
	Words [palette.Size]uint16
	// PaletteMap converts each source palette index into a tile color.
	PaletteMap []uint8
	// Transparent is the source index used for sprite transparency.
	Transparent int
	// Grayscale is set if the colors were collapsed onto the four shades.
	Grayscale bool
	// Warnings collects anything that was corrected during conversion.
	Warnings []Warning
}

// ConvertFile decodes the indexed PNG in file and converts it.
func (c *Converter) ConvertFile(file string, o Options) (*Picture, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInput, file, err)
	}

	return c.Convert(m, o)
}

// Convert reconciles the palette of m, cuts it into tiles and, if asked
// to, removes the duplicate tiles.
func (c *Converter) Convert(m *image.Indexed, o Options) (*Picture, error) {
	n := len(m.Palette)
	c.logger.Debug("analyzing colors", "width", m.Width, "height", m.Height, "depth", m.Depth, "colors", n)

	if n > palette.Size && !o.Grayscale {
		return nil, fmt.Errorf("%w: PNG has more than %d colors, select grayscale conversion (-g) and try again", ErrInput, palette.Size)
	}

	r, err := palette.Reconcile(m.Palette, palette.Options{
		Sprite:       o.Target.IsSprite(),
		Grayscale:    o.Grayscale,
		Sort:         o.SortPalette,
		Transparency: o.Transparency,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	p := &Picture{
		Palette:     r.Palette,
		Words:       r.Palette.Words(),
		PaletteMap:  r.Map,
		Transparent: r.Transparent,
		Grayscale:   r.Grayscale,
	}

	for _, w := range r.Warnings {
		c.warn(Warning{Kind: ResolutionWarning, Message: w})
		p.Warnings = append(p.Warnings, Warning{Kind: ResolutionWarning, Message: w})
	}

	switch {
	case r.Grayscale:
		c.logger.Debug("mapped to a grayscale palette")
	case o.SortPalette:
		c.logger.Debug("re-arranged the palette from light to dark")
	}
	for i, v := range r.Map {
		c.logger.Debug(fmt.Sprintf("[%02x] --> [%02x] L: %03d", i, v, m.Palette[i].Lightness()))
	}

	if p.Sheet, err = tile.Rasterize(&m.Bitmap, r.Map, o.Target.TileHeight()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	c.logger.Debug("allocated picture data", "tiles", p.Count, "cols", p.Cols, "rows", p.Rows)

	for i, col := range p.Palette {
		c.logger.Debug(fmt.Sprintf("[%02x] %02x %02x %02x --> %04x", i, col.R, col.G, col.B, p.Words[i]))
	}

	if o.TileReduction {
		removed := p.Reduce()
		c.logger.Debug("performed tile reduction", "removed", removed, "tiles", p.Count)
	}

	return p, nil
}
