// Package encoder writes rendered frames into a looping animated
// image container, chosen by the output file extension.
package encoder

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

var errNoFrames = errors.New("no frames to encode")

// Frame pairs one rendered canvas with its screen time.
type Frame struct {
	Image *image.RGBA
	Delay int // milliseconds
}

type Encoder interface {
	// Encode writes all frames to path as an infinitely looping animation.
	Encode(path string, frames []Frame) error
}

// ByExtension picks the encoder matching the output file name:
// .gif for GIF, .png or .apng for animated PNG.
func ByExtension(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gif":
		return GIF{}, nil
	case ".png", ".apng":
		return APNG{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", ext)
}
