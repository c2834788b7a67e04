package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

// parseCoordList parses "x,y;x,y;x,y" into a Coord slice. Z/M are read as a
// third/fourth comma-separated value when present, honoring hasZ/hasM.
func parseCoordList(s string, hasZ, hasM bool) ([]geom.Coord, error) {
	if s == "" {
		return nil, nil
	}
	groups := strings.Split(s, ";")
	out := make([]geom.Coord, len(groups))
	for i, g := range groups {
		c, err := parseCoord(g, hasZ, hasM)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

func parseCoord(s string, hasZ, hasM bool) (geom.Coord, error) {
	fields := strings.Split(s, ",")
	want := 2
	if hasZ {
		want++
	}
	if hasM {
		want++
	}
	if len(fields) != want {
		return geom.Coord{}, fmt.Errorf("expected %d ordinates, got %q", want, s)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geom.Coord{}, fmt.Errorf("invalid ordinate %q: %w", f, err)
		}
		vals[i] = v
	}
	c := geom.Coord{X: vals[0], Y: vals[1]}
	idx := 2
	if hasZ {
		c.Z = vals[idx]
		idx++
	}
	if hasM {
		c.M = vals[idx]
	}
	return c, nil
}

// parseRingList parses "x,y;x,y|x,y;x,y" (rings separated by '|') into a
// ring list for NewPolygon.
func parseRingList(s string, hasZ, hasM bool) ([][]geom.Coord, error) {
	if s == "" {
		return nil, nil
	}
	groups := strings.Split(s, "|")
	out := make([][]geom.Coord, len(groups))
	for i, g := range groups {
		ring, err := parseCoordList(g, hasZ, hasM)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		out[i] = ring
	}
	return out, nil
}
