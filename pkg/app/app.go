// Package app wires the pipeline together: decode the input logo,
// build the timing plan, render the rotated frames, and encode the
// looping animation.
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lexero/logospin/pkg/caption"
	"github.com/lexero/logospin/pkg/colorize"
	"github.com/lexero/logospin/pkg/config"
	"github.com/lexero/logospin/pkg/encoder"
	"github.com/lexero/logospin/pkg/logger"
	"github.com/lexero/logospin/pkg/media"
	"github.com/lexero/logospin/pkg/render"
	"github.com/lexero/logospin/pkg/spin"
)

type App struct {
	conf  config.Config
	input string
	log   *logger.Logger
}

func New(conf config.Config, input string, log *logger.Logger) *App {
	return &App{conf: conf, input: input, log: log}
}

// OutputPath is the configured output or "<input>_rotating.gif".
func (a *App) OutputPath() string {
	if a.conf.Output.Path != "" {
		return a.conf.Output.Path
	}
	base := filepath.Base(a.input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(a.input), name+"_rotating.gif")
}

// Run renders the animation once.
func (a *App) Run() error {
	out := a.OutputPath()
	enc, err := encoder.ByExtension(out)
	if err != nil {
		return err
	}

	src, err := media.Load(a.input, a.log)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.input, err)
	}

	plan, err := a.buildPlan()
	if err != nil {
		return err
	}
	if plan.Degenerate {
		a.log.Warn().
			Float64("degrees", plan.TotalAngle).
			Msg("total rotation below 270 degrees; keeping the partial turn, the loop will jump")
	}

	r := render.New(src)
	frames := make([]encoder.Frame, len(plan.Frames))
	for i, f := range plan.Frames {
		frames[i] = encoder.Frame{Image: r.Frame(f.Angle), Delay: f.Delay}
	}

	frames, err = a.applyCaption(frames)
	if err != nil {
		return err
	}

	if err := enc.Encode(out, frames); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}

	a.log.Info().
		Str("output", out).
		Int("frames", len(frames)).
		Float64("rotations", plan.Rotations()).
		Dur("loop", plan.Duration()).
		Msg("animation written")
	return nil
}

func (a *App) buildPlan() (*spin.Plan, error) {
	s := a.conf.Spin
	if s.Step > 0 {
		return spin.BuildStepPlan(s.Step, s.FrameDuration)
	}
	return spin.BuildPlan(spin.Options{
		Curve:         spin.Kind(s.Curve),
		Params:        spin.Params{InitialSpeed: s.InitialSpeed, DecayFactor: s.DecayFactor},
		Length:        s.Length,
		FrameDuration: s.FrameDuration,
		HoldStill:     s.HoldStill,
	})
}

func (a *App) applyCaption(frames []encoder.Frame) ([]encoder.Frame, error) {
	c := a.conf.Caption
	if c.Text == "" {
		return frames, nil
	}
	face, err := caption.LoadFace(c.Font, c.Size)
	if err != nil {
		return nil, fmt.Errorf("caption font: %w", err)
	}
	col, err := colorize.ParseColor(c.Color)
	if err != nil {
		return nil, err
	}
	letterDelay := 0
	if c.Animate {
		letterDelay = int(c.LetterDuration * 1000)
	}
	capt := caption.Caption{
		Text:        c.Text,
		Face:        face,
		Color:       col,
		Margin:      c.Margin,
		LetterDelay: letterDelay,
	}
	return capt.Extend(frames), nil
}
