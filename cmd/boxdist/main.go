// Command boxdist prints the distance from each point in a GeoJSON feature
// collection to a box.
//
// The box is the bound of every non-point geometry in the collection, unless
// one is given with --box. Distances are great-circle meters by default, or
// Euclidean distances in input units with --planar.
package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Input   string `short:"i" long:"in" description:"Input GeoJSON file path. Reads from stdin if empty"`
	Box     string `short:"b" long:"box" description:"Box as minx,miny,maxx,maxy. Defaults to the bound of the non-point features"`
	Planar  bool   `short:"p" long:"planar" description:"Use planar Euclidean distance instead of great-circle meters"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLogger(opts.Verbose)

	var in io.Reader = os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to open input")
		}
		defer f.Close()
		in = f
	}

	if err := run(opts, in, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Failed to compute distances")
		os.Exit(1)
	}
}

func setupLogger(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
}
