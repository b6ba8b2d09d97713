/*
Package gbdk writes converted pictures as C source for the GBDK toolchain.

The generated file declares the size macros, the optional palette, the tile
data, the attribute and tilemap arrays and, if requested, a main function
that shows the picture on screen.
*/
package gbdk

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bodgit/pngb"
)

const (
	// Version is the generator version written into the header.
	Version = "1.00"
	// URL is the project URL written into the header.
	URL = "https://github.com/bodgit/pngb"

	screenWidth  = 160
	screenHeight = 144

	spriteOffsetX = 8
	spriteOffsetY = 16
	windowOffsetX = 7

	maxSprites = 40

	rule = "*********************************************************************"
)

// SanitizeName returns s made safe to use as a C identifier prefix. The first
// character is replaced with an underscore unless it is a letter, any other
// character that isn't a letter or digit is replaced with an underscore.
func SanitizeName(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case isAlpha(c):
		case i > 0 && c >= '0' && c <= '9':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Encoder writes the C source for a picture.
type Encoder struct {
	w   io.Writer
	err error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// WriteHeader writes the comment block naming the output file, the source
// file and the time t the code was generated.
func (e *Encoder) WriteHeader(in, out string, t time.Time) error {
	e.printf("/%s\n", rule)
	e.printf(" **  <%s>\n", out)
	e.printf(" %s\n", rule)
	e.printf(" **   Code generated with PNGB v%s\n", Version)
	e.printf(" **   %s\n", URL)
	e.printf(" **\n")
	e.printf(" ** Date:\t%s\n", t.Format("2006-01-02 15:04:05"))
	e.printf(" ** Source:\t%s\n", in)
	e.printf(" %s/\n\n", rule)

	return e.err
}

// Encode writes the declarations for p, and the demo code if o asks for it.
// The options should already have been through pngb.Validate.
func (e *Encoder) Encode(p *pngb.Picture, o pngb.Options) error {
	name := SanitizeName(o.Name)

	if o.TestCode {
		e.printf("#include <gb/gb.h>\n\n")
	}

	e.printf("#define %s_cols\t%d\n", name, p.Cols)
	e.printf("#define %s_rows\t%d\n", name, p.Rows)
	e.printf("#define %s_base\t%d\n", name, o.BaseIndex)
	e.printf("#define %s_tsize\t%s_cols*%s_rows\n", name, name, name)
	e.printf("#define %s_tiles\t%d\n\n", name, p.Count)

	if o.CreatePalette {
		e.printf("const unsigned int %s_pal[] = {", name)
		for i, w := range p.Words {
			sep := ','
			if i == len(p.Words)-1 {
				sep = ' '
			}
			e.printf(" 0x%04x%c", w, sep)
		}
		e.printf("};\n\n")
	}

	e.data(name, p)

	// Sprites get one attribute per tile, layers one per grid cell
	n := p.Cols * p.Rows
	if o.Target.IsSprite() {
		n = p.Count
	}
	e.grid(name+"_att", n, p.Cols, func(int) int { return o.PaletteNumber })

	if o.CreateMap {
		e.grid(name+"_map", p.Cols*p.Rows, p.Cols, func(i int) int { return o.BaseIndex + p.Map[i] })
	}

	if o.TestCode {
		if o.Target.IsSprite() {
			e.sprites(name, p, o)
		} else {
			e.layer(name, p, o)
		}
	}

	return e.err
}

func (e *Encoder) data(name string, p *pngb.Picture) {
	e.printf("const unsigned char %s_dat[] = {\n", name)
	for t := 0; t < p.Count; t++ {
		row := make([]string, 0, p.TileHeight)
		for y := 0; y < p.TileHeight; y++ {
			lo, hi := p.Row(t, y)
			row = append(row, fmt.Sprintf("0x%02x, 0x%02x", lo, hi))
		}
		e.printf("\t%s", strings.Join(row, ", "))
		if t < p.Count-1 {
			e.printf(",\n")
		}
	}
	e.printf("\n};\n\n")
}

func (e *Encoder) grid(array string, n, cols int, value func(int) int) {
	e.printf("const unsigned char %s[] = {", array)
	for i := 0; i < n; i++ {
		if i%cols == 0 {
			e.printf("\n\t")
		}
		e.printf("0x%02x", value(i))
		if i < n-1 {
			e.printf(", ")
		}
	}
	e.printf("\n};\n\n")
}

func (e *Encoder) layer(name string, p *pngb.Picture, o pngb.Options) {
	layer, show := "bkg", "BKG"
	dx, dy := -(screenWidth-p.Width)/2, -(screenHeight-p.Height)/2
	if o.Target == pngb.Window {
		layer, show = "win", "WIN"
		dx, dy = (screenWidth-p.Width)/2+windowOffsetX, (screenHeight-p.Height)/2
	}

	e.printf("\n\nint main(void) {\n")
	if o.CreatePalette {
		e.printf("\tset_bkg_palette(%d, 1, %s_pal);\n", o.PaletteNumber, name)
	}
	e.printf("\tset_%s_data(0x%02x, %s_tiles, %s_dat);\n", layer, o.BaseIndex, name, name)
	e.printf("\tVBK_REG = 1;\n")
	e.printf("\tset_%s_tiles(0, 0, %s_cols, %s_rows, %s_att);\n", layer, name, name, name)
	e.printf("\tVBK_REG = 0;\n")
	e.printf("\tset_%s_tiles(0, 0, %s_cols, %s_rows, %s_map);\n", layer, name, name, name)
	e.printf("\tmove_%s (%d, %d);\n", layer, dx, dy)
	e.printf("\n\tSHOW_%s;\n", show)
	e.footer()
}

func (e *Encoder) sprites(name string, p *pngb.Picture, o pngb.Options) {
	dx, dy := (screenWidth-p.Width)/2+spriteOffsetX, (screenHeight-p.Height)/2+spriteOffsetY

	// 8x16 sprites take two tile slots each
	double := ""
	if o.Target == pngb.TallSprite {
		double = "*2"
	}

	e.printf("\n/* Sets the tile, attributes and position of a sprite, for demo purposes only. */\n")
	e.printf("void set_%s_sprite(unsigned char index, unsigned char tile, unsigned char attr, unsigned char x, unsigned char y) {\n", name)
	e.printf("\tif (index >= %d) return;\n", maxSprites)
	e.printf("\tset_sprite_tile (index, tile);\n")
	e.printf("\tset_sprite_prop (index, attr);\n")
	e.printf("\tmove_sprite (index, x, y);\n")
	e.printf("}\n")

	e.printf("\n\nint main(void) {\n")
	e.printf("\tunsigned char x, y, xt, yt, i=0;\n")
	if o.Target == pngb.TallSprite {
		e.printf("\tSPRITES_8x16;\n")
	}
	if o.CreatePalette {
		e.printf("\tset_sprite_palette(%d, 1, %s_pal);\n", o.PaletteNumber, name)
	}
	e.printf("\tset_sprite_data(0x%02x, %s_tiles%s, %s_dat);\n", o.BaseIndex, name, double, name)
	e.printf("\tVBK_REG = 0;\n\n")
	e.printf("\tfor(y=0; y< %s_rows; y++){\n", name)
	e.printf("\t\tyt=y*%dU;\n", p.TileHeight)
	e.printf("\t\tfor(x=0; x < %s_cols; x++){\n", name)
	e.printf("\t\t\txt=x*8;\n")
	e.printf("\t\t\tif (i >= %s_tsize) break;\n", name)
	e.printf("\t\t\tset_%s_sprite (i, %s_map[i]%s, %s_att[%s_map[i]-%s_base], xt+%dU, yt+%dU);\n", name, name, double, name, name, name, dx, dy)
	e.printf("\t\t\ti++;\n")
	e.printf("\t\t}\n")
	e.printf("\t}\n")
	e.printf("\n\tSHOW_SPRITES;\n")
	e.footer()
}

func (e *Encoder) footer() {
	e.printf("\tenable_interrupts();\n")
	e.printf("\tDISPLAY_ON;\n")
	e.printf("\n\treturn 0;\n}\n")
}
