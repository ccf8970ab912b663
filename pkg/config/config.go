package config

import (
	flag "github.com/spf13/pflag"
)

type Config struct {
	Debug bool

	Spin    Spin
	Caption Caption
	Output  Output
}

// Spin configures the timing engine. Durations are in seconds.
type Spin struct {
	Curve         string  `fig:"curve" default:"exponential"`
	InitialSpeed  float64 `fig:"initial_speed" default:"720"`
	DecayFactor   float64 `fig:"decay_factor" default:"3"`
	Length        float64 `fig:"length" default:"3"`
	FrameDuration float64 `fig:"frame_duration" default:"0.05"`
	HoldStill     float64 `fig:"hold_still"`
	// Step switches to the plain fixed-step mode (N degrees per frame,
	// no deceleration curve) when > 0.
	Step int `fig:"step"`
}

// Caption configures the optional text drawn under the logo.
type Caption struct {
	Text           string  `fig:"text"`
	Font           string  `fig:"font" default:"Roboto Slab"`
	Size           float64 `fig:"size" default:"200"`
	LetterDuration float64 `fig:"letter_duration" default:"0.1"`
	Margin         int     `fig:"margin" default:"60"`
	Color          string  `fig:"color" default:"99,74,49"`
	Animate        bool    `fig:"animate"`
}

type Output struct {
	Path  string `fig:"path"`
	Watch bool   `fig:"watch"`
}

// configPath allows a custom config file location.
var configPath string

func NewConfig() (conf Config) {
	if err := Load(&conf, configPath); err != nil {
		panic(err)
	}
	return
}

// ParseFlags registers runtime flags on top of the current config
// values. Call flag.Parse() afterwards.
func (c *Config) ParseFlags() {
	flag.StringVarP(&c.Spin.Curve, "curve", "c", c.Spin.Curve,
		"Slowdown curve (exponential, exponential_floored, linear, quadratic, cosine, smooth_stop)")
	flag.Float64VarP(&c.Spin.Length, "length", "l", c.Spin.Length, "Total animation length in seconds")
	flag.Float64VarP(&c.Spin.FrameDuration, "duration", "d", c.Spin.FrameDuration, "Duration of each frame in seconds")
	flag.Float64Var(&c.Spin.InitialSpeed, "initial-speed", c.Spin.InitialSpeed, "Initial rotation speed in degrees/second")
	flag.Float64Var(&c.Spin.DecayFactor, "decay-factor", c.Spin.DecayFactor, "Decay factor for exponential curves")
	flag.Float64Var(&c.Spin.HoldStill, "hold-still", c.Spin.HoldStill, "Seconds to hold the logo still before looping")
	flag.IntVarP(&c.Spin.Step, "step", "s", c.Spin.Step, "Fixed rotation step in degrees (disables the curve engine)")

	flag.StringVarP(&c.Caption.Text, "text", "t", c.Caption.Text, "Caption text under the logo")
	flag.StringVar(&c.Caption.Font, "font", c.Caption.Font, "Caption font family")
	flag.Float64Var(&c.Caption.Size, "font-size", c.Caption.Size, "Caption font size in points")
	flag.Float64Var(&c.Caption.LetterDuration, "letter-duration", c.Caption.LetterDuration, "Seconds per unrolled caption letter")
	flag.BoolVar(&c.Caption.Animate, "animate-text", c.Caption.Animate, "Unroll the caption letter by letter")

	flag.StringVarP(&c.Output.Path, "output", "o", c.Output.Path, "Output file (.gif or .png for APNG)")
	flag.BoolVarP(&c.Output.Watch, "watch", "w", c.Output.Watch, "Re-render whenever the input file changes")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	flag.StringVar(&configPath, "conf", configPath, "Set custom configuration file path")
}
