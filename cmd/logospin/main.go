package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/lexero/logospin/pkg/app"
	"github.com/lexero/logospin/pkg/config"
	"github.com/lexero/logospin/pkg/logger"
	"github.com/lexero/logospin/pkg/os"
)

var Version = ""

func run() error {
	conf := config.NewConfig()
	conf.ParseFlags()
	flag.Parse()

	log := logger.NewConsole(conf.Debug, false)
	if Version != "" {
		log.Debug().Str("version", Version).Msg("logospin")
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected one input image (file path or URL)")
	}

	a := app.New(conf, flag.Arg(0), log)
	if conf.Output.Watch {
		return a.Watch(os.ExpectTermination())
	}
	return a.Run()
}

func main() {
	if err := run(); err != nil {
		logger.Default().Fatal().Err(err).Msg("logospin failed")
	}
}
