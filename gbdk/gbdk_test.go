package gbdk

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/bodgit/pngb"
	"github.com/bodgit/pngb/image"
	"github.com/bodgit/pngb/palette"
	"github.com/bodgit/pngb/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"gbpic", "gbpic"},
		{"Title2", "Title2"},
		{"1up", "_up"},
		{"my-pic.v2", "my_pic_v2"},
		{"_tiles", "_tiles"},
		{"a b", "a_b"},
		{"9", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeName(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, identifier, got)
		})
	}
}

func convert(t *testing.T, w, h int, o pngb.Options, f func(x, y int) uint8) (*pngb.Picture, pngb.Options) {
	t.Helper()

	bm, err := tile.NewBitmap(w, h, 1)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bm.SetIndex(x, y, f(x, y))
		}
	}
	m := &image.Indexed{
		Bitmap:  *bm,
		Palette: []palette.Color{palette.Gray(palette.White), palette.Gray(palette.Black)},
	}

	p, err := pngb.New(nil).Convert(m, o)
	require.NoError(t, err)

	o, _ = pngb.Validate(p, o)
	return p, o
}

func strip(x, y int) uint8 {
	if x >= tile.Width {
		return 1
	}
	return 0
}

func encode(t *testing.T, p *pngb.Picture, o pngb.Options) string {
	t.Helper()

	b := new(bytes.Buffer)
	require.NoError(t, NewEncoder(b).Encode(p, o))
	return b.String()
}

func TestEncodeBackground(t *testing.T) {
	o := pngb.DefaultOptions()
	o.CreatePalette = true
	o.CreateMap = true
	p, o := convert(t, 16, 8, o, strip)

	want := "#define gbpic_cols\t2\n" +
		"#define gbpic_rows\t1\n" +
		"#define gbpic_base\t1\n" +
		"#define gbpic_tsize\tgbpic_cols*gbpic_rows\n" +
		"#define gbpic_tiles\t2\n\n" +
		"const unsigned int gbpic_pal[] = { 0x7fff, 0x0000, 0x0000, 0x0000 };\n\n" +
		"const unsigned char gbpic_dat[] = {\n" +
		"\t" + strings.Repeat("0x00, 0x00, ", 7) + "0x00, 0x00,\n" +
		"\t" + strings.Repeat("0xff, 0x00, ", 7) + "0xff, 0x00\n" +
		"};\n\n" +
		"const unsigned char gbpic_att[] = {\n" +
		"\t0x00, 0x00\n" +
		"};\n\n" +
		"const unsigned char gbpic_map[] = {\n" +
		"\t0x01, 0x02\n" +
		"};\n\n"

	assert.Equal(t, want, encode(t, p, o))
}

func TestEncodeOptionalArrays(t *testing.T) {
	p, o := convert(t, 16, 8, pngb.DefaultOptions(), strip)
	out := encode(t, p, o)

	assert.NotContains(t, out, "#include")
	assert.NotContains(t, out, "_pal[]")
	assert.NotContains(t, out, "_map[]")
	assert.NotContains(t, out, "main")
	assert.Contains(t, out, "gbpic_dat[]")
	assert.Contains(t, out, "gbpic_att[]")
}

func TestEncodeGrid(t *testing.T) {
	o := pngb.DefaultOptions()
	o.CreateMap = true
	o.TileReduction = true
	o.PaletteNumber = 5
	o.BaseIndex = 16
	o.Name = "2bit"

	// Two rows of two columns, only the right hand column is set
	p, o := convert(t, 16, 16, o, strip)
	require.Equal(t, 2, p.Count)
	out := encode(t, p, o)

	assert.Contains(t, out, "#define _bit_tiles\t2\n")
	assert.Contains(t, out, "const unsigned char _bit_att[] = {\n\t0x05, 0x05, \n\t0x05, 0x05\n};\n\n")
	assert.Contains(t, out, "const unsigned char _bit_map[] = {\n\t0x10, 0x11, \n\t0x10, 0x11\n};\n\n")
}

func TestEncodeSpriteAttributes(t *testing.T) {
	o := pngb.DefaultOptions()
	o.Target = pngb.Sprite
	o.TileReduction = true
	p, o := convert(t, 32, 8, o, func(x, y int) uint8 { return 0 })
	require.Equal(t, 1, p.Count)

	// One attribute per stored tile rather than per grid cell
	assert.Contains(t, encode(t, p, o), "const unsigned char gbpic_att[] = {\n\t0x00\n};\n\n")
}

func TestEncodeDemoLayers(t *testing.T) {
	tests := []struct {
		target pngb.Target
		want   []string
	}{
		{
			target: pngb.Background,
			want: []string{
				"\tset_bkg_palette(0, 1, gbpic_pal);\n",
				"\tset_bkg_data(0x01, gbpic_tiles, gbpic_dat);\n",
				"\tVBK_REG = 1;\n\tset_bkg_tiles(0, 0, gbpic_cols, gbpic_rows, gbpic_att);\n",
				"\tVBK_REG = 0;\n\tset_bkg_tiles(0, 0, gbpic_cols, gbpic_rows, gbpic_map);\n",
				"\tmove_bkg (-72, -68);\n",
				"\n\tSHOW_BKG;\n",
			},
		},
		{
			target: pngb.Window,
			want: []string{
				"\tset_win_data(0x01, gbpic_tiles, gbpic_dat);\n",
				"\tset_win_tiles(0, 0, gbpic_cols, gbpic_rows, gbpic_map);\n",
				"\tmove_win (79, 68);\n",
				"\n\tSHOW_WIN;\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			o := pngb.DefaultOptions()
			o.Target = tt.target
			o.TestCode = true
			o.CreatePalette = true
			p, o := convert(t, 16, 8, o, strip)
			require.True(t, o.CreateMap)

			out := encode(t, p, o)
			assert.True(t, strings.HasPrefix(out, "#include <gb/gb.h>\n\n"))
			assert.Contains(t, out, "gbpic_map[]")
			assert.Contains(t, out, "\n\nint main(void) {\n")
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			assert.NotContains(t, out, "sprite")
			assert.True(t, strings.HasSuffix(out, "\tenable_interrupts();\n\tDISPLAY_ON;\n\n\treturn 0;\n}\n"))
		})
	}
}

func TestEncodeDemoSprites(t *testing.T) {
	o := pngb.DefaultOptions()
	o.Target = pngb.TallSprite
	o.TestCode = true
	o.BaseIndex = 4
	p, o := convert(t, 8, 32, o, func(x, y int) uint8 { return uint8(y / 16) })

	out := encode(t, p, o)
	for _, s := range []string{
		"void set_gbpic_sprite(unsigned char index, unsigned char tile, unsigned char attr, unsigned char x, unsigned char y) {\n",
		"\tif (index >= 40) return;\n",
		"\tunsigned char x, y, xt, yt, i=0;\n\tSPRITES_8x16;\n",
		"\tset_sprite_data(0x04, gbpic_tiles*2, gbpic_dat);\n\tVBK_REG = 0;\n\n",
		"\t\tyt=y*16U;\n",
		"\t\t\tif (i >= gbpic_tsize) break;\n",
		"\t\t\tset_gbpic_sprite (i, gbpic_map[i]*2, gbpic_att[gbpic_map[i]-gbpic_base], xt+84U, yt+72U);\n",
		"\n\tSHOW_SPRITES;\n",
	} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "set_sprite_palette")
	assert.NotContains(t, out, "SHOW_BKG")
}

func TestEncodeDemoSmallSprites(t *testing.T) {
	o := pngb.DefaultOptions()
	o.Target = pngb.Sprite
	o.TestCode = true
	o.CreatePalette = true
	p, o := convert(t, 16, 8, o, strip)

	out := encode(t, p, o)
	assert.NotContains(t, out, "SPRITES_8x16")
	assert.NotContains(t, out, "*2")
	assert.Contains(t, out, "\tset_sprite_palette(0, 1, gbpic_pal);\n")
	assert.Contains(t, out, "\t\tyt=y*8U;\n")
	assert.Contains(t, out, "xt+80U, yt+84U);\n")
}

func TestWriteHeader(t *testing.T) {
	b := new(bytes.Buffer)
	when := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)
	require.NoError(t, NewEncoder(b).WriteHeader("in.png", "out.c", when))

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, " **  <out.c>", lines[1])
	assert.Equal(t, " **   Code generated with PNGB v"+Version, lines[3])
	assert.Equal(t, " ** Date:\t2024-03-05 07:08:09", lines[6])
	assert.Equal(t, " ** Source:\tin.png", lines[7])
	assert.True(t, strings.HasPrefix(lines[0], "/*"))
	assert.True(t, strings.HasSuffix(lines[8], "*/"))
	assert.Equal(t, []string{"", ""}, lines[9:])
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestEncodeWriteError(t *testing.T) {
	p, o := convert(t, 8, 8, pngb.DefaultOptions(), strip)

	e := NewEncoder(failWriter{})
	assert.ErrorIs(t, e.Encode(p, o), errWrite)
	assert.ErrorIs(t, e.WriteHeader("in.png", "out.c", time.Now()), errWrite)
}
