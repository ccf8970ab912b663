package spin

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func defaultOptions() Options {
	return Options{
		Curve:         Exponential,
		Params:        Params{InitialSpeed: 720, DecayFactor: 3},
		Length:        3,
		FrameDuration: 0.05,
	}
}

func TestBuildPlanClosesLoop(t *testing.T) {
	for _, k := range Kinds() {
		o := defaultOptions()
		o.Curve = k
		p, err := BuildPlan(o)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		last := p.Frames[len(p.Frames)-1]
		if last.Angle != 0 {
			t.Errorf("%s: last angle = %v, want exactly 0", k, last.Angle)
		}
		for i, f := range p.Frames {
			if f.Angle < 0 || f.Angle >= 360 {
				t.Fatalf("%s: frame %d angle %v out of [0, 360)", k, i, f.Angle)
			}
			if f.Delay != 50 {
				t.Fatalf("%s: frame %d delay %d, want 50ms", k, i, f.Delay)
			}
		}
	}
}

func TestRescaleLandsOnFullTurn(t *testing.T) {
	for _, k := range Kinds() {
		o := defaultOptions()
		o.Curve = k
		p, err := BuildPlan(o)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if p.Degenerate {
			t.Fatalf("%s: unexpectedly degenerate (%v deg)", k, p.TotalAngle)
		}
		turns := p.TotalAngle / 360
		if math.Abs(turns-math.Round(turns)) > 1e-6 {
			t.Errorf("%s: total angle %v is not a multiple of 360", k, p.TotalAngle)
		}
	}
}

// A slow, short spin stays below the rescale threshold: the angles keep
// their raw integrated values (mod 360) and the plan is flagged.
func TestNoRescaleBelowThreshold(t *testing.T) {
	o := Options{
		Curve:         Linear,
		Params:        Params{InitialSpeed: 100},
		Length:        1,
		FrameDuration: 0.25,
	}
	p, err := BuildPlan(o)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Degenerate {
		t.Fatal("plan should be degenerate")
	}
	want := []float64{0, 25, 43.75, 56.25, 0} // raw Euler samples, last forced to 0
	if len(p.Frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(p.Frames), len(want))
	}
	for i, f := range p.Frames {
		if !almostEqual(f.Angle, want[i]) {
			t.Errorf("frame %d angle = %v, want %v", i, f.Angle, want[i])
		}
	}
	if !almostEqual(p.TotalAngle, 62.5) {
		t.Errorf("total angle = %v, want 62.5", p.TotalAngle)
	}
}

func TestDeterminism(t *testing.T) {
	for _, k := range Kinds() {
		o := defaultOptions()
		o.Curve = k
		o.HoldStill = 0.4
		a, err := BuildPlan(o)
		if err != nil {
			t.Fatal(err)
		}
		b, err := BuildPlan(o)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: identical inputs produced different plans", k)
		}
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		length, dt float64
		want       int
	}{
		{1, 0.5, 3},
		{1, 1, 2},
		{1, 0.1, 11},
		{2.5, 0.05, 51},
		{0.3, 0.1, 4},
	}
	for _, tt := range tests {
		o := defaultOptions()
		o.Length, o.FrameDuration = tt.length, tt.dt
		p, err := BuildPlan(o)
		if err != nil {
			t.Fatal(err)
		}
		if len(p.Frames) != tt.want {
			t.Errorf("length=%v dt=%v: %d frames, want %d", tt.length, tt.dt, len(p.Frames), tt.want)
		}
	}
}

func TestHoldStill(t *testing.T) {
	o := defaultOptions()
	o.FrameDuration = 0.1
	o.HoldStill = 0.3
	p, err := BuildPlan(o)
	if err != nil {
		t.Fatal(err)
	}
	base, err := BuildPlan(Options{
		Curve: o.Curve, Params: o.Params, Length: o.Length, FrameDuration: o.FrameDuration,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(p.Frames) - len(base.Frames); got != 3 {
		t.Fatalf("hold added %d frames, want 3", got)
	}
	for _, f := range p.Frames[len(base.Frames):] {
		if f.Angle != 0 || f.Delay != 100 {
			t.Errorf("hold frame = %+v, want angle 0, delay 100ms", f)
		}
	}
}

// One fast full turn over two steps: raw samples integrate to 540 deg,
// so the series is rescaled by 4/3 to land on two full turns.
func TestLinearFullTurnRescale(t *testing.T) {
	p, err := BuildPlan(Options{
		Curve:         Linear,
		Params:        Params{InitialSpeed: 720},
		Length:        1,
		FrameDuration: 0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Frame{{Angle: 0, Delay: 500}, {Angle: 120, Delay: 500}, {Angle: 0, Delay: 500}}
	if len(p.Frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(p.Frames), len(want))
	}
	for i, f := range p.Frames {
		if !almostEqual(f.Angle, want[i].Angle) || f.Delay != want[i].Delay {
			t.Errorf("frame %d = %+v, want %+v", i, f, want[i])
		}
	}
	if p.TotalAngle != 720 || p.Degenerate {
		t.Errorf("total = %v, degenerate = %v; want 720, false", p.TotalAngle, p.Degenerate)
	}
}

func TestDegeneratePartialTurn(t *testing.T) {
	p, err := BuildPlan(Options{
		Curve:         Linear,
		Params:        Params{InitialSpeed: 100},
		Length:        1,
		FrameDuration: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Frame{{Angle: 0, Delay: 1000}, {Angle: 0, Delay: 1000}} // 100 deg forced back to 0
	if !reflect.DeepEqual(p.Frames, want) {
		t.Errorf("frames = %+v, want %+v", p.Frames, want)
	}
	if !p.Degenerate || !almostEqual(p.TotalAngle, 100) {
		t.Errorf("degenerate = %v, total = %v; want true, 100", p.Degenerate, p.TotalAngle)
	}
}

func TestZeroVelocityCurve(t *testing.T) {
	p, err := BuildPlan(Options{
		Curve:         Linear,
		Params:        Params{InitialSpeed: 0},
		Length:        1,
		FrameDuration: 0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Degenerate || p.TotalAngle != 0 {
		t.Fatalf("degenerate = %v, total = %v; want true, 0", p.Degenerate, p.TotalAngle)
	}
	for i, f := range p.Frames {
		if f.Angle != 0 {
			t.Errorf("frame %d angle = %v, want 0", i, f.Angle)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	valid := defaultOptions()
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero length", func(o *Options) { o.Length = 0 }},
		{"negative length", func(o *Options) { o.Length = -1 }},
		{"zero frame duration", func(o *Options) { o.FrameDuration = 0 }},
		{"negative frame duration", func(o *Options) { o.FrameDuration = -0.05 }},
		{"negative hold still", func(o *Options) { o.HoldStill = -0.1 }},
		{"unknown curve", func(o *Options) { o.Curve = "spline" }},
		{"frame limit", func(o *Options) { o.Length = 200; o.FrameDuration = 0.001 }},
		{"frame count overflows int", func(o *Options) { o.Length = 1e20; o.FrameDuration = 1e-10 }},
		{"hold frame count overflows int", func(o *Options) { o.Length = 1e-6; o.HoldStill = 1e20; o.FrameDuration = 1e-10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			p, err := BuildPlan(o)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
			if p != nil {
				t.Fatal("no partial plan expected on error")
			}
		})
	}
}

func TestBuildStepPlan(t *testing.T) {
	p, err := BuildStepPlan(30, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Frames) != 12 {
		t.Fatalf("got %d frames, want 12", len(p.Frames))
	}
	for i, f := range p.Frames {
		if f.Angle != float64(i*30) || f.Delay != 100 {
			t.Errorf("frame %d = %+v", i, f)
		}
	}
	if p.TotalAngle != 360 || p.Degenerate {
		t.Errorf("total = %v, degenerate = %v", p.TotalAngle, p.Degenerate)
	}

	for _, step := range []int{0, -30, 361} {
		if _, err := BuildStepPlan(step, 0.1); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("step %d: err = %v, want ErrInvalidParameter", step, err)
		}
	}
	if _, err := BuildStepPlan(30, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero duration: err = %v, want ErrInvalidParameter", err)
	}
}

func TestPlanReport(t *testing.T) {
	o := defaultOptions()
	o.Length, o.FrameDuration, o.HoldStill = 2, 0.1, 0.5
	p, err := BuildPlan(o)
	if err != nil {
		t.Fatal(err)
	}
	if p.FrameCount() != 21+5 {
		t.Errorf("frame count = %d, want 26", p.FrameCount())
	}
	if want := 2600 * time.Millisecond; p.Duration() != want {
		t.Errorf("duration = %v, want %v", p.Duration(), want)
	}
	if turns := p.Rotations(); !almostEqual(turns, math.Round(turns)) {
		t.Errorf("rotations = %v, want a whole number", turns)
	}
}

func BenchmarkBuildPlan(b *testing.B) {
	o := defaultOptions()
	o.Length, o.FrameDuration = 10, 0.01
	for i := 0; i < b.N; i++ {
		if _, err := BuildPlan(o); err != nil {
			b.Fatal(err)
		}
	}
}
