package main

import (
	"fmt"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

// buildFlags holds the geometry-construction flags shared by "encode" and
// "twkb encode".
type buildFlags struct {
	typeName string
	points   string
	rings    string
	srid     int32
	hasZ     bool
	hasM     bool
}

func (f buildFlags) build() (*geom.Geometry, error) {
	switch f.typeName {
	case "point":
		coords, err := parseCoordList(f.points, f.hasZ, f.hasM)
		if err != nil {
			return nil, err
		}
		if len(coords) != 1 {
			return nil, fmt.Errorf("point requires exactly one coordinate")
		}
		return geom.NewPoint(f.srid, coords[0], f.hasZ, f.hasM)
	case "linestring":
		coords, err := parseCoordList(f.points, f.hasZ, f.hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewLineString(f.srid, coords, f.hasZ, f.hasM)
	case "circularstring":
		coords, err := parseCoordList(f.points, f.hasZ, f.hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewCircularString(f.srid, coords, f.hasZ, f.hasM)
	case "triangle":
		coords, err := parseCoordList(f.points, f.hasZ, f.hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewTriangle(f.srid, coords, f.hasZ, f.hasM)
	case "polygon":
		rings, err := parseRingList(f.rings, f.hasZ, f.hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewPolygon(f.srid, rings, f.hasZ, f.hasM)
	default:
		return nil, fmt.Errorf("unsupported --type %q (want point, linestring, circularstring, triangle, or polygon)", f.typeName)
	}
}
