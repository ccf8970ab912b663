// logotint recolors a logo still: either a symmetric lightness
// gradient of one main color, or a remap of cream tones onto a target
// color that keeps the gradient.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/lexero/logospin/pkg/colorize"
	"github.com/lexero/logospin/pkg/logger"
	"github.com/lexero/logospin/pkg/media"
)

func run() error {
	mainColor := flag.String("main", "230,227,219", "Main color as R,G,B or #RRGGBB (gradient mode)")
	target := flag.String("target", "", "Target color: switches to cream-remap mode")
	strength := flag.Float64("strength", 0.1, "Gradient strength (0.1 = +/-10%)")
	output := flag.StringP("output", "o", "", "Output PNG path")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logger.NewConsole(*debug, false)
	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected one input image")
	}
	input := flag.Arg(0)

	img, err := media.Load(input, log)
	if err != nil {
		return err
	}

	out := *output
	if out == "" {
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		out = filepath.Join(filepath.Dir(input), name+"_tinted.png")
	}

	if *target != "" {
		col, err := colorize.ParseColor(*target)
		if err != nil {
			return err
		}
		img = colorize.RecolorCream(img, col)
	} else {
		col, err := colorize.ParseColor(*mainColor)
		if err != nil {
			return err
		}
		img = colorize.Gradient(img, col, *strength)
	}

	if err := media.SavePNG(out, img); err != nil {
		return err
	}
	log.Info().Str("output", out).Msg("tinted image written")
	return nil
}

func main() {
	if err := run(); err != nil {
		logger.Default().Fatal().Err(err).Msg("logotint failed")
	}
}
