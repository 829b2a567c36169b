package main

import (
	"flag"
	"os"

	"github.com/andjf/quoridor/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	debug := flag.Bool("debug", false, "log every move and search summary")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if err := experiments.RunDepthExperiment(); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
