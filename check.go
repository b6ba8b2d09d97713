package pngb

import "fmt"

// Hardware limits checked after conversion.
const (
	maxPaletteNumber = 7
	maxBaseIndex     = 255
	maxMapSize       = 32
	maxBackground    = 256
	maxSprites       = 40
	maxSpritesWide   = 10
)

// WarningKind classifies a Warning.
type WarningKind int

const (
	// ResolutionWarning means a value was not usable and has been
	// replaced.
	ResolutionWarning WarningKind = iota
	// CapacityWarning means the result exceeds a hardware limit.
	CapacityWarning
)

// Warning is a non-fatal problem found during conversion.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}

func (c *Converter) warn(w Warning) {
	c.logger.Warn(w.Message)
}

// Check validates o against the converted picture p and logs a warning for
// everything it finds. The returned options have any out of range value
// corrected and must be used for output.
func (c *Converter) Check(p *Picture, o Options) Options {
	o, warnings := Validate(p, o)
	for _, w := range warnings {
		c.warn(w)
	}
	return o
}

// Validate returns o with any value outside of what the hardware supports
// corrected, along with a warning for every correction and for every
// hardware limit p exceeds.
func Validate(p *Picture, o Options) (Options, []Warning) {
	var warnings []Warning
	warn := func(kind WarningKind, format string, args ...interface{}) {
		warnings = append(warnings, Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}

	if o.PaletteNumber > maxPaletteNumber {
		o.PaletteNumber = maxPaletteNumber
		warn(ResolutionWarning, "palette number can't be > %d, this will be corrected", maxPaletteNumber)
	} else if o.PaletteNumber < 0 {
		o.PaletteNumber = 0
		warn(ResolutionWarning, "palette number can't be negative, this will be corrected")
	}

	if o.BaseIndex > maxBaseIndex {
		o.BaseIndex = maxBaseIndex
		warn(ResolutionWarning, "base index can't be > %d, this will be corrected", maxBaseIndex)
	} else if o.BaseIndex < 0 {
		o.BaseIndex = 0
		warn(ResolutionWarning, "base index can't be negative, this will be corrected")
	}

	if o.Target == TallSprite && o.BaseIndex&1 != 0 {
		o.BaseIndex &^= 1
		warn(ResolutionWarning, "in 8x16 mode base index must be even, base will be rounded to %d", o.BaseIndex)
	}

	if o.TestCode && !o.CreateMap {
		o.CreateMap = true
		warn(ResolutionWarning, "for the test code to work, the tilemap output option has been activated despite not being selected")
	}

	if o.SortPalette && !o.CreatePalette {
		o.CreatePalette = true
		warn(ResolutionWarning, "palette sorting is activated but palette output is disabled, so it will be enabled now")
	}

	if o.Target.IsSprite() {
		if p.Count+o.BaseIndex > maxSprites {
			warn(CapacityWarning, "there are more than %d frames in %s_dat[] or the chosen base index is too high, this may cause problems with set_sprite_data()", maxSprites, o.Name)
		}
		if p.Cols*p.Rows > maxSprites || p.Cols > maxSpritesWide {
			warn(CapacityWarning, "the picture is more than %d sprites in size or more than %d sprites wide, the sample code won't display correctly", maxSprites, maxSpritesWide)
		}
	} else {
		layer := "bkg"
		if o.Target == Window {
			layer = "win"
		}
		if p.Cols > maxMapSize || p.Rows > maxMapSize {
			warn(CapacityWarning, "the image is more than %dx%d tiles in size, the set_%s_tiles() calls will most probably overflow", maxMapSize, maxMapSize, layer)
		}
		if p.Count+o.BaseIndex > maxBackground {
			warn(CapacityWarning, "there are more than %d tiles in %s_dat[] or the chosen base index is too high, this may cause problems with set_%s_data()", maxBackground, o.Name, layer)
		}
	}

	return o, warnings
}
