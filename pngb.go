/*
Package pngb is a library for converting indexed PNG images into Game Boy
tile, palette and tilemap data.
*/
package pngb

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrUsage is returned for malformed options.
	ErrUsage = errors.New("usage error")
	// ErrInput is returned when the input image cannot be converted.
	ErrInput = errors.New("input error")
)

// Converter runs the conversion pipeline.
type Converter struct {
	logger hclog.Logger
}

// New returns a Converter logging to logger. A nil logger discards
// everything.
func New(logger hclog.Logger) *Converter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Converter{
		logger: logger,
	}
}
