package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/bodgit/pngb"
	"github.com/bodgit/pngb/gbdk"
	"github.com/bodgit/pngb/image"
	"github.com/bodgit/pngb/palette"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

var targets = []struct {
	flag   string
	target pngb.Target
}{
	{"K", pngb.Background},
	{"W", pngb.Window},
	{"S", pngb.Sprite},
	{"B", pngb.TallSprite},
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "pngb"
	app.Usage = "Convert indexed PNG images into Game Boy tiles for GBDK"
	app.Version = gbdk.Version
	app.ArgsUsage = "INPUT OUTPUT"
	app.UseShortOptionHandling = true
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "K",
			Usage: "generate data for the background layer (default)",
		},
		&cli.BoolFlag{
			Name:  "W",
			Usage: "generate data for the window layer",
		},
		&cli.BoolFlag{
			Name:  "S",
			Usage: "generate data for 8x8 sprites",
		},
		&cli.BoolFlag{
			Name:  "B",
			Usage: "generate data for 8x16 sprites",
		},
		&cli.BoolFlag{
			Name:  "p",
			Usage: "output the palette",
		},
		&cli.BoolFlag{
			Name:  "m",
			Usage: "output the tilemap",
		},
		&cli.BoolFlag{
			Name:  "c",
			Usage: "output demo code",
		},
		&cli.BoolFlag{
			Name:  "g",
			Usage: "map the colors onto the four grayscale shades",
		},
		&cli.BoolFlag{
			Name:  "s",
			Usage: "sort the palette from light to dark",
		},
		&cli.BoolFlag{
			Name:  "e",
			Usage: "remove duplicate tiles",
		},
		&cli.BoolFlag{
			Name:  "v",
			Usage: "increase verbosity",
		},
		&cli.StringFlag{
			Name:  "base",
			Value: "1",
			Usage: "index of the first tile or sprite",
		},
		&cli.StringFlag{
			Name:  "pal",
			Value: "0",
			Usage: "palette number, 0 to 7",
		},
		&cli.StringFlag{
			Name:  "name",
			Value: pngb.DefaultOptions().Name,
			Usage: "prefix for the generated identifiers",
		},
		&cli.StringFlag{
			Name:  "tr",
			Usage: "transparent sprite color, either #RRGGBB or a palette index",
		},
		&cli.StringFlag{
			Name:  "preview",
			Usage: "also write the converted picture to `FILE` as a PNG image",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "scale factor of the preview image",
		},
	}

	app.Action = run

	return app
}

func decimal(c *cli.Context, name string) (int, error) {
	i, err := strconv.Atoi(c.String(name))
	if err != nil {
		return 0, fmt.Errorf("%w: -%s expects a decimal number, got %q", pngb.ErrUsage, name, c.String(name))
	}
	return i, nil
}

func options(c *cli.Context) (pngb.Options, error) {
	o := pngb.DefaultOptions()

	n := 0
	for _, t := range targets {
		if c.Bool(t.flag) {
			o.Target = t.target
			n++
		}
	}
	if n > 1 {
		return o, fmt.Errorf("%w: only one of -K, -W, -S or -B can be used", pngb.ErrUsage)
	}

	o.CreatePalette = c.Bool("p")
	o.CreateMap = c.Bool("m")
	o.TestCode = c.Bool("c")
	o.Grayscale = c.Bool("g")
	o.SortPalette = c.Bool("s")
	o.TileReduction = c.Bool("e")
	o.Name = c.String("name")

	var err error
	if o.BaseIndex, err = decimal(c, "base"); err != nil {
		return o, err
	}
	if o.PaletteNumber, err = decimal(c, "pal"); err != nil {
		return o, err
	}

	if c.IsSet("tr") {
		if o.Transparency, err = palette.ParseTransparency(c.String("tr")); err != nil {
			return o, fmt.Errorf("%w: %v", pngb.ErrUsage, err)
		}
	}

	return o, nil
}

func run(c *cli.Context) error {
	switch c.NArg() {
	case 0:
		return cli.ShowAppHelp(c)
	case 1:
		if err := cli.ShowAppHelp(c); err != nil {
			return err
		}
		return cli.Exit("", 1)
	case 2:
	default:
		return cli.Exit(fmt.Errorf("%w: too many parameters", pngb.ErrUsage), 1)
	}

	o, err := options(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	scale := c.Int("scale")
	if scale < 1 {
		return cli.Exit(fmt.Errorf("%w: -scale must be at least 1", pngb.ErrUsage), 1)
	}

	level := hclog.Info
	if c.Bool("v") {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   c.App.Name,
		Output: c.App.Writer,
		Level:  level,
	})

	in, out := c.Args().Get(0), c.Args().Get(1)
	if err := convert(logger, in, out, o, c.String("preview"), scale); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func convert(logger hclog.Logger, in, out string, o pngb.Options, preview string, scale int) error {
	conv := pngb.New(logger)

	p, err := conv.ConvertFile(in, o)
	if err != nil {
		return err
	}
	o = conv.Check(p, o)

	report(logger, in, out, o)

	if err := writeSource(in, out, p, o); err != nil {
		return err
	}
	logger.Debug("wrote source", "file", out)

	if preview == "" {
		return nil
	}

	f, err := os.Create(preview)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := image.Encode(f, p.Sheet, p.Palette, o.Target.IsSprite(), scale); err != nil {
		return err
	}
	logger.Debug("wrote preview", "file", preview, "scale", scale)

	return f.Close()
}

func writeSource(in, out string, p *pngb.Picture, o pngb.Options) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	e := gbdk.NewEncoder(w)
	if err := e.WriteHeader(in, out, time.Now()); err != nil {
		return err
	}
	if err := e.Encode(p, o); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return f.Close()
}

func report(logger hclog.Logger, in, out string, o pngb.Options) {
	if !logger.IsDebug() {
		return
	}

	args := []interface{}{
		"file", in,
		"output", out,
		"name", gbdk.SanitizeName(o.Name),
		"grayscale", o.Grayscale,
		"type", o.Target.String(),
	}
	if o.Target.IsSprite() {
		args = append(args, "transparency", o.Transparency.String())
	}
	args = append(args,
		"palette", o.CreatePalette,
		"tilemap", o.CreateMap,
		"code", o.TestCode,
		"palette_index", o.PaletteNumber,
	)
	if o.CreateMap || o.TestCode {
		args = append(args, "base_index", o.BaseIndex)
	}
	if !o.Grayscale {
		args = append(args, "sort", o.SortPalette)
	}
	args = append(args, "reduction", o.TileReduction)

	logger.Debug("parameters", args...)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
