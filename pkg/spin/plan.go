// Package spin turns a deceleration curve into a discrete, loop-safe
// sequence of rotation angles and frame delays. It is purely
// computational: rendering and encoding are someone else's job.
package spin

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidParameter is wrapped by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	fullTurn = 360.0

	// rescaleThreshold is the minimum total rotation, in degrees, for
	// which the whole series is rescaled to land exactly on a multiple
	// of a full turn. Anything smaller keeps its original shape and the
	// loop jumps instead.
	rescaleThreshold = 270.0

	// maxFrames bounds the sample count so a tiny frame duration
	// against a long animation fails fast instead of allocating
	// without limit.
	maxFrames = 100_000
)

// Frame is a single step of the animation: an orientation in [0, 360)
// and how long it stays on screen.
type Frame struct {
	Angle float64 // degrees, clockwise
	Delay int     // milliseconds
}

// Options are the inputs of a plan. All durations are in seconds.
type Options struct {
	Curve         Kind
	Params        Params
	Length        float64 // total animation length
	FrameDuration float64 // fixed time step, becomes the per-frame delay
	HoldStill     float64 // extra time at rest before the loop restarts
}

// Plan is the assembled animation: an ordered frame sequence plus the
// figures a caller may want to report. It is immutable after BuildPlan
// returns and shares no state with the engine.
type Plan struct {
	Frames     []Frame
	TotalAngle float64 // degrees after normalization

	// Degenerate marks a total rotation below the rescale threshold.
	// The plan is still usable but the loop will visibly jump;
	// callers should surface this as a warning.
	Degenerate bool
}

func (p *Plan) FrameCount() int    { return len(p.Frames) }
func (p *Plan) Rotations() float64 { return p.TotalAngle / fullTurn }

// Duration is the playback time of one loop.
func (p *Plan) Duration() time.Duration {
	ms := 0
	for _, f := range p.Frames {
		ms += f.Delay
	}
	return time.Duration(ms) * time.Millisecond
}

// BuildPlan integrates the chosen curve with a fixed step of
// o.FrameDuration, normalizes the result so the loop closes, and appends
// the hold-still tail. The same options always produce the same plan.
func BuildPlan(o Options) (*Plan, error) {
	if !o.Curve.Valid() {
		return nil, fmt.Errorf("unknown curve kind %q: %w", o.Curve, ErrInvalidParameter)
	}
	if o.Length <= 0 {
		return nil, fmt.Errorf("animation length %v <= 0: %w", o.Length, ErrInvalidParameter)
	}
	if o.FrameDuration <= 0 {
		return nil, fmt.Errorf("frame duration %v <= 0: %w", o.FrameDuration, ErrInvalidParameter)
	}
	if o.HoldStill < 0 {
		return nil, fmt.Errorf("hold still %v < 0: %w", o.HoldStill, ErrInvalidParameter)
	}

	// Bound the counts while they are still floats: a huge span over a
	// tiny step overflows the int conversion in steps and would slip
	// past the limit below as a negative number.
	if o.Length/o.FrameDuration > maxFrames {
		return nil, fmt.Errorf("length %v over step %v exceeds the %d frame limit: %w",
			o.Length, o.FrameDuration, maxFrames, ErrInvalidParameter)
	}
	if o.HoldStill/o.FrameDuration > maxFrames {
		return nil, fmt.Errorf("hold still %v over step %v exceeds the %d frame limit: %w",
			o.HoldStill, o.FrameDuration, maxFrames, ErrInvalidParameter)
	}

	n := steps(o.Length, o.FrameDuration) + 1
	hold := steps(o.HoldStill, o.FrameDuration)
	if n+hold > maxFrames {
		return nil, fmt.Errorf("%d frames exceed the %d frame limit: %w", n+hold, maxFrames, ErrInvalidParameter)
	}

	// Forward Euler with a fixed step. The step error is accepted:
	// the curves are tuned by eye and the normalization below lands
	// the endpoint exactly regardless.
	angles := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		angles[i] = total
		v := Velocity(o.Curve, float64(i)*o.FrameDuration, o.Length, o.Params)
		total += v * o.FrameDuration
	}

	total, degenerate := closeLoop(angles, total)

	delay := int(o.FrameDuration * 1000) // truncated, matches the old tool
	frames := make([]Frame, 0, n+hold)
	for _, a := range angles {
		frames = append(frames, Frame{Angle: a, Delay: delay})
	}
	for i := 0; i < hold; i++ {
		frames = append(frames, Frame{Angle: 0, Delay: delay})
	}

	return &Plan{Frames: frames, TotalAngle: total, Degenerate: degenerate}, nil
}

// steps is floor(span/dt) with a hair of slack so that exact ratios
// survive binary rounding: 0.3/0.1 must count as 3, not 2.
func steps(span, dt float64) int {
	return int(math.Floor(span / dt * (1 + 1e-9)))
}

// closeLoop normalizes the cumulative angle series in place so playback
// can loop without a jump. Series that rotate at least rescaleThreshold
// degrees are uniformly rescaled to the nearest multiple of a full turn,
// which keeps the curve's shape; smaller ones are left alone and flagged
// degenerate rather than distorted. Either way every sample is wrapped
// into [0, 360) and the last one is forced to exactly zero, which is the
// loop-closure guarantee playback relies on.
func closeLoop(angles []float64, total float64) (float64, bool) {
	degenerate := total < rescaleThreshold
	if !degenerate {
		target := math.Round(total/fullTurn) * fullTurn
		scale := target / total
		for i := range angles {
			angles[i] *= scale
		}
		total = target
	}
	for i := range angles {
		angles[i] = math.Mod(angles[i], fullTurn)
	}
	angles[len(angles)-1] = 0
	return total, degenerate
}

// BuildStepPlan is the plain fixed-step mode: 360/step uniform frames,
// no deceleration. The last frame stops one step short of a full turn,
// so the loop closes by construction.
func BuildStepPlan(stepDegrees int, frameDuration float64) (*Plan, error) {
	if stepDegrees <= 0 || stepDegrees > 360 {
		return nil, fmt.Errorf("rotation step %d out of (0, 360]: %w", stepDegrees, ErrInvalidParameter)
	}
	if frameDuration <= 0 {
		return nil, fmt.Errorf("frame duration %v <= 0: %w", frameDuration, ErrInvalidParameter)
	}

	n := 360 / stepDegrees
	delay := int(frameDuration * 1000)
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Angle: float64(i * stepDegrees), Delay: delay}
	}
	return &Plan{Frames: frames, TotalAngle: fullTurn}, nil
}
