// Package render turns an animation plan's angles into pixels: each
// frame is the source logo rotated about its center and pasted onto a
// fresh transparent canvas of the original size.
package render

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

type Renderer struct {
	src *image.RGBA
}

func New(src image.Image) *Renderer {
	return &Renderer{src: clone(src)}
}

func (r *Renderer) Size() (w, h int) {
	b := r.src.Bounds()
	return b.Dx(), b.Dy()
}

// Frame renders the logo rotated clockwise by angle degrees. The canvas
// is not expanded, matching the old tool: corners that rotate out of
// bounds are clipped. Every call returns a fresh buffer.
func (r *Renderer) Frame(angle float64) *image.RGBA {
	b := r.src.Bounds()
	dst := image.NewRGBA(b)
	if angle == 0 {
		draw.Draw(dst, b, r.src, b.Min, draw.Src)
		return dst
	}

	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	// rotation about the canvas center; with y growing downwards the
	// positive direction comes out clockwise
	m := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	xdraw.CatmullRom.Transform(dst, m, r.src, b, xdraw.Over, nil)
	return dst
}

// clone normalizes any image into an RGBA buffer anchored at the origin.
func clone(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
