package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/boxdist"
)

var errNoBox = errors.New("no box: input has no non-point features and --box is empty")

func run(opts Options, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return fmt.Errorf("parse geojson: %w", err)
	}

	var box boxdist.Box
	if opts.Box != "" {
		box, err = parseBox(opts.Box)
		if err != nil {
			return err
		}
	} else {
		box, err = featureBox(fc)
		if err != nil {
			return err
		}
	}
	log.Debug().
		Floats64("min", box.Min[:]).
		Floats64("max", box.Max[:]).
		Bool("planar", opts.Planar).
		Msg("Using box")

	var count int
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		name := f.Properties.MustString("name", strconv.Itoa(i))
		var dist float64
		if opts.Planar {
			dist = boxdist.PlanarBoxDistance(p[0], p[1],
				box.Min[0], box.Min[1], box.Max[0], box.Max[1])
		} else {
			dist = boxdist.GeodeticBoxDist(p.Lon(), p.Lat(),
				box.Min[0], box.Min[1], box.Max[0], box.Max[1])
		}
		if _, err := fmt.Fprintf(out, "%s\t%g\n", name, dist); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		count++
	}
	log.Debug().Int("points", count).Msg("Done")
	return nil
}

// parseBox parses "minx,miny,maxx,maxy".
func parseBox(s string) (boxdist.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return boxdist.Box{}, fmt.Errorf("invalid box %q: expected minx,miny,maxx,maxy", s)
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return boxdist.Box{}, fmt.Errorf("invalid box %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		return boxdist.Box{}, fmt.Errorf("invalid box %q: min is greater than max", s)
	}
	return boxdist.Box{
		Min: [2]float64{vals[0], vals[1]},
		Max: [2]float64{vals[2], vals[3]},
	}, nil
}

// featureBox returns the bound of every non-point geometry.
func featureBox(fc *geojson.FeatureCollection) (boxdist.Box, error) {
	var bound orb.Bound
	var filled bool
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if _, ok := f.Geometry.(orb.Point); ok {
			continue
		}
		if !filled {
			bound = f.Geometry.Bound()
			filled = true
		} else {
			bound = bound.Union(f.Geometry.Bound())
		}
	}
	if !filled {
		return boxdist.Box{}, errNoBox
	}
	return boxdist.Box{Min: bound.Min, Max: bound.Max}, nil
}
