// Package caption extends rendered frames with a text line under the
// logo, either static or unrolling letter by letter once the spin has
// settled.
package caption

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lexero/logospin/pkg/encoder"
)

// sidePad keeps long captions off the canvas edge.
const sidePad = 20

type Caption struct {
	Text   string
	Face   font.Face
	Color  color.RGBA
	Margin int // gap between the logo and the text baseline area

	// LetterDelay > 0 appends one frame per letter after the existing
	// frames, each shown this many milliseconds, unrolling the text on
	// the resting logo. Zero draws the full text on every frame.
	LetterDelay int
}

// Extend recomposites every frame onto a taller canvas that fits the
// caption. The input frames are not modified.
func (c Caption) Extend(frames []encoder.Frame) []encoder.Frame {
	if c.Text == "" || len(frames) == 0 {
		return frames
	}

	d := font.Drawer{Face: c.Face, Src: image.NewUniform(c.Color)}
	textW := d.MeasureString(c.Text).Ceil()
	metrics := c.Face.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Ceil()

	logo := frames[0].Image.Bounds()
	w := logo.Dx()
	if tw := textW + 2*sidePad; tw > w {
		w = tw
	}
	h := logo.Dy() + c.Margin + textH + c.Margin/2

	layout := composer{
		drawer:   d,
		canvas:   image.Rect(0, 0, w, h),
		logoAt:   image.Pt((w-logo.Dx())/2, 0),
		textX:    (w - textW) / 2,
		baseline: logo.Dy() + c.Margin + metrics.Ascent.Ceil(),
	}

	runes := []rune(c.Text)
	animated := c.LetterDelay > 0

	out := make([]encoder.Frame, 0, len(frames)+len(runes))
	for _, f := range frames {
		visible := runes
		if animated {
			visible = nil // text appears only after the spin settles
		}
		out = append(out, encoder.Frame{Image: layout.compose(f.Image, visible), Delay: f.Delay})
	}
	if animated {
		rest := frames[len(frames)-1].Image
		for i := 1; i <= len(runes); i++ {
			out = append(out, encoder.Frame{Image: layout.compose(rest, runes[:i]), Delay: c.LetterDelay})
		}
	}
	return out
}

type composer struct {
	drawer   font.Drawer
	canvas   image.Rectangle
	logoAt   image.Point
	textX    int
	baseline int
}

// compose draws the logo and a prefix of the caption on a fresh canvas.
// The prefix starts at the full text's left edge so letters never shift
// as they appear.
func (l composer) compose(logo *image.RGBA, visible []rune) *image.RGBA {
	dst := image.NewRGBA(l.canvas)
	draw.Draw(dst, logo.Bounds().Add(l.logoAt), logo, logo.Bounds().Min, draw.Over)
	if len(visible) > 0 {
		d := l.drawer
		d.Dst = dst
		d.Dot = fixed.P(l.textX, l.baseline)
		d.DrawString(string(visible))
	}
	return dst
}
