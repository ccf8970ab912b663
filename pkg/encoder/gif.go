package encoder

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/lexero/logospin/pkg/media"
)

// GIF encodes frames with the standard GIF writer. Each frame is
// dithered onto a web-safe palette extended with one transparent slot,
// and marked disposal-to-background so the previous frame is cleared
// before the next one draws.
type GIF struct{}

var gifPalette = append(color.Palette{color.Transparent}, palette.WebSafe...)

func (GIF) Encode(path string, frames []Frame) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	out := gif.GIF{LoopCount: 0} // loop forever
	for _, f := range frames {
		b := f.Image.Bounds()
		p := image.NewPaletted(b, gifPalette)
		draw.FloydSteinberg.Draw(p, b, f.Image, image.Point{})
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, f.Delay/10) // GIF counts hundredths of a second
		out.Disposal = append(out.Disposal, gif.DisposalBackground)
	}
	return media.WriteAtomic(path, func(w io.Writer) error {
		return gif.EncodeAll(w, &out)
	})
}
