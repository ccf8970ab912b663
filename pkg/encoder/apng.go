package encoder

import (
	"image"

	"github.com/setanarut/apng"

	"github.com/lexero/logospin/pkg/media"
)

// APNG encodes frames as an animated PNG, which keeps the full RGBA
// color depth the GIF palette throws away. The writer takes a single
// delay for the whole sequence, in hundredths of a second; plans always
// carry a uniform frame delay, so the first frame's is used.
type APNG struct{}

func (APNG) Encode(path string, frames []Frame) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	imgs := make([]image.Image, len(frames))
	for i, f := range frames {
		imgs[i] = f.Image
	}
	return media.WriteAtomicFile(path, func(tmp string) error {
		apng.Save(tmp, imgs, uint16(frames[0].Delay/10))
		return nil
	})
}
