package main

import (
	"bytes"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"
)

func runCases(t *testing.T, opts Options) map[string]float64 {
	f, err := os.Open("../../testdata/cases.geojson")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var out bytes.Buffer
	if err := run(opts, f, &out); err != nil {
		t.Fatal(err)
	}
	res := make(map[string]float64)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			t.Fatalf("bad line %q", line)
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			t.Fatal(err)
		}
		res[parts[0]] = v
	}
	return res
}

func TestRunGeodetic(t *testing.T) {
	res := runCases(t, Options{})
	if len(res) != 9 {
		t.Fatalf("expected 9, got %d", len(res))
	}
	if res["inside"] != 0 {
		t.Fatalf("expected 0, got %v", res["inside"])
	}
	// half a degree of latitude
	if d := res["north"]; d < 55000 || d > 56000 {
		t.Fatalf("unexpected north distance %v", d)
	}
	if res["north-east"] <= res["north"] {
		t.Fatalf("expected north-east farther than north")
	}
}

func TestRunPlanar(t *testing.T) {
	res := runCases(t, Options{Planar: true, Box: "-3,40,-2.5,40.5"})
	if res["inside"] != 0 {
		t.Fatalf("expected 0, got %v", res["inside"])
	}
	if res["north"] != 0.5 || res["west"] != 0.5 {
		t.Fatalf("unexpected %v", res)
	}
}

func TestRunNoBox(t *testing.T) {
	in := `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","properties":{"name":"a"},` +
		`"geometry":{"type":"Point","coordinates":[1,2]}}]}`
	err := run(Options{}, strings.NewReader(in), &bytes.Buffer{})
	if !errors.Is(err, errNoBox) {
		t.Fatalf("expected errNoBox, got %v", err)
	}
}

func TestRunBadInput(t *testing.T) {
	if err := run(Options{}, strings.NewReader("{"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseBox(t *testing.T) {
	b, err := parseBox("0, 1, 2, 3")
	if err != nil {
		t.Fatal(err)
	}
	if b.Min != [2]float64{0, 1} || b.Max != [2]float64{2, 3} {
		t.Fatalf("unexpected box %v", b)
	}
	for _, s := range []string{"", "1,2,3", "a,b,c,d", "2,0,1,3", "0,3,2,1"} {
		if _, err := parseBox(s); err == nil {
			t.Fatalf("%q: expected error", s)
		}
	}
}
