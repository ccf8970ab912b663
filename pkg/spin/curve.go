package spin

import "math"

// Kind selects one of the fixed deceleration profiles.
type Kind string

const (
	Exponential        Kind = "exponential"
	ExponentialFloored Kind = "exponential_floored"
	Linear             Kind = "linear"
	Quadratic          Kind = "quadratic"
	Cosine             Kind = "cosine"
	SmoothStop         Kind = "smooth_stop"
)

// Params holds the curve shape parameters. DecayFactor is used by the
// exponential variants only.
type Params struct {
	InitialSpeed float64 // degrees per second at t = 0
	DecayFactor  float64
}

// floorPoint is the fraction of the animation length after which the
// floored exponential variant stops decaying, so the tail doesn't crawl.
const floorPoint = 0.7

func (k Kind) Valid() bool {
	switch k {
	case Exponential, ExponentialFloored, Linear, Quadratic, Cosine, SmoothStop:
		return true
	}
	return false
}

// Kinds lists every supported curve kind.
func Kinds() []Kind {
	return []Kind{Exponential, ExponentialFloored, Linear, Quadratic, Cosine, SmoothStop}
}

// Velocity returns the instantaneous angular velocity in degrees per second
// at time t of an animation lasting length seconds. All curves decelerate
// from p.InitialSpeed and never go negative. The caller guarantees
// length > 0 and 0 <= t <= length.
func Velocity(k Kind, t, length float64, p Params) float64 {
	switch k {
	case Exponential:
		return p.InitialSpeed * math.Exp(-p.DecayFactor/length*t)
	case ExponentialFloored:
		if t > floorPoint*length {
			t = floorPoint * length
		}
		return p.InitialSpeed * math.Exp(-p.DecayFactor/length*t)
	case Linear:
		return math.Max(p.InitialSpeed-p.InitialSpeed/length*t, 0)
	case Quadratic:
		f := math.Max(1-t/length, 0)
		return p.InitialSpeed * f * f
	case Cosine:
		phase := math.Min(t/length, 1) * math.Pi
		return p.InitialSpeed * (1 + math.Cos(phase)) / 2
	case SmoothStop:
		f := math.Max(1-t/length, 0)
		return p.InitialSpeed * f * f * f
	}
	return 0
}
