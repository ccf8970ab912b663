// Package colorize recolors logo stills: a horizontal lightness
// gradient of a single main color, and a remap of cream tones onto a
// target color that keeps the original gradient.
package colorize

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// The cream range in HSL: warm hue, light, gently saturated. Pixels
// outside it are left untouched by RecolorCream.
const (
	creamHueMin = 30.0
	creamHueMax = 60.0
	creamLitMin = 0.70
	creamLitMax = 0.98
	creamSatMin = 0.05
	creamSatMax = 0.45
)

// Gradient paints every pixel with main, scaled from (1-strength) on
// the left edge to (1+strength) on the right. Alpha is preserved, so
// the logo's shape survives untouched.
func Gradient(img *image.RGBA, main color.RGBA, strength float64) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	w := b.Dx()
	for x := 0; x < w; x++ {
		pos := 0.0
		if w > 1 {
			pos = float64(x) / float64(w-1)
		}
		mult := (1 - strength) + pos*2*strength
		r := clamp8(float64(main.R) * mult)
		g := clamp8(float64(main.G) * mult)
		bl := clamp8(float64(main.B) * mult)
		for y := 0; y < b.Dy(); y++ {
			a := img.RGBAAt(b.Min.X+x, b.Min.Y+y).A
			out.SetRGBA(b.Min.X+x, b.Min.Y+y, premultiply(r, g, bl, a))
		}
	}
	return out
}

// RecolorCream maps cream-range pixels onto the target color: the
// pixel's position inside the cream lightness band picks a lightness
// around the target, the hue keeps a sliver of its original variation,
// and saturation blends 70/30 towards the target.
func RecolorCream(img *image.RGBA, target color.RGBA) *image.RGBA {
	th, ts, tl := rgbaToHsl(target)

	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			h, s, l := rgbaToHsl(straight(px))
			if h < creamHueMin || h > creamHueMax ||
				l < creamLitMin || l > creamLitMax ||
				s < creamSatMin || s > creamSatMax {
				out.SetRGBA(x, y, px)
				continue
			}

			pos := (l - creamLitMin) / (creamLitMax - creamLitMin)
			litMin := math.Max(0.1, tl-0.2)
			litMax := math.Min(0.9, tl+0.3)
			newL := litMin + pos*(litMax-litMin)

			newH := math.Mod(th+(h-45)*0.1+360, 360)

			newS := ts*0.7 + s*0.3
			newS = math.Min(0.9, math.Max(0.1, newS))

			r, g, bl := colorful.Hsl(newH, newS, newL).RGB255()
			out.SetRGBA(x, y, premultiply(r, g, bl, px.A))
		}
	}
	return out
}

// ParseColor accepts "R,G,B" decimal triples and "#RRGGBB" hex.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := strings.TrimPrefix(s, "#")
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex color %q: %v", s, err)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("bad color %q, want R,G,B or #RRGGBB", s)
	}
	var c [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %v", s, err)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}

func rgbaToHsl(c color.RGBA) (h, s, l float64) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
}

// straight undoes alpha premultiplication so the HSL math sees the
// pixel's real color.
func straight(c color.RGBA) color.RGBA {
	if c.A == 0 || c.A == 255 {
		return c
	}
	f := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * 255 / f),
		G: uint8(uint32(c.G) * 255 / f),
		B: uint8(uint32(c.B) * 255 / f),
		A: c.A,
	}
}

// premultiply stores straight color under the given alpha the way
// image.RGBA expects.
func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 255 {
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
	f := uint32(a)
	return color.RGBA{
		R: uint8(uint32(r) * f / 255),
		G: uint8(uint32(g) * f / 255),
		B: uint8(uint32(b) * f / 255),
		A: a,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
