package lwgeom

import (
	"fmt"
	"math"
	"strconv"
)

// BOX3D is the always-3D double-precision bounding box used at the outer
// interface, spec.md §4.C7/GLOSSARY. Supplemented from
// original_source/lwgeom/lwgeom_box3d.c per SPEC_FULL.md §11: the interval-
// relation predicate family (left/right/above/below/front/back, each in
// strict and "-or-over" form, plus contains/contained-by/overlaps/same/
// distance).
type BOX3D struct {
	SRID                   int32
	Xmin, Xmax             float64
	Ymin, Ymax             float64
	Zmin, Zmax             float64
}

// ToString renders "BOX3D(xmin ymin zmin,xmax ymax zmax)" with %.15g-style
// formatting, spec.md §6.
func (b BOX3D) ToString() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 15, 64) }
	return fmt.Sprintf("BOX3D(%s %s %s,%s %s %s)",
		f(b.Xmin), f(b.Ymin), f(b.Zmin), f(b.Xmax), f(b.Ymax), f(b.Zmax))
}

// Interval helpers for the predicate family below: strict ("Left") means
// entirely to one side with no touching; "-or-over" allows touching/overlap
// on that boundary.

func (b BOX3D) LeftOf(o BOX3D) bool        { return b.Xmax < o.Xmin }
func (b BOX3D) OverLeftOf(o BOX3D) bool    { return b.Xmax <= o.Xmax }
func (b BOX3D) RightOf(o BOX3D) bool       { return b.Xmin > o.Xmax }
func (b BOX3D) OverRightOf(o BOX3D) bool   { return b.Xmin >= o.Xmin }
func (b BOX3D) Below(o BOX3D) bool         { return b.Ymax < o.Ymin }
func (b BOX3D) OverBelow(o BOX3D) bool     { return b.Ymax <= o.Ymax }
func (b BOX3D) Above(o BOX3D) bool         { return b.Ymin > o.Ymax }
func (b BOX3D) OverAbove(o BOX3D) bool     { return b.Ymin >= o.Ymin }
func (b BOX3D) Front(o BOX3D) bool         { return b.Zmax < o.Zmin }
func (b BOX3D) OverFront(o BOX3D) bool     { return b.Zmax <= o.Zmax }
func (b BOX3D) Back(o BOX3D) bool          { return b.Zmin > o.Zmax }
func (b BOX3D) OverBack(o BOX3D) bool      { return b.Zmin >= o.Zmin }

// Contains reports whether b fully contains o.
func (b BOX3D) Contains(o BOX3D) bool {
	return b.Xmin <= o.Xmin && b.Xmax >= o.Xmax &&
		b.Ymin <= o.Ymin && b.Ymax >= o.Ymax &&
		b.Zmin <= o.Zmin && b.Zmax >= o.Zmax
}

// ContainedBy reports whether b is fully contained by o.
func (b BOX3D) ContainedBy(o BOX3D) bool { return o.Contains(b) }

// Overlaps reports whether b and o's intervals overlap on every axis.
func (b BOX3D) Overlaps(o BOX3D) bool {
	return !(b.Xmax < o.Xmin || b.Xmin > o.Xmax ||
		b.Ymax < o.Ymin || b.Ymin > o.Ymax ||
		b.Zmax < o.Zmin || b.Zmin > o.Zmax)
}

// Same reports exact equality of every ordinate.
func (b BOX3D) Same(o BOX3D) bool {
	return b.Xmin == o.Xmin && b.Xmax == o.Xmax &&
		b.Ymin == o.Ymin && b.Ymax == o.Ymax &&
		b.Zmin == o.Zmin && b.Zmax == o.Zmax
}

// Distance returns the Euclidean distance between the two boxes (0 if they
// overlap), computed per-axis gap then combined.
func (b BOX3D) Distance(o BOX3D) float64 {
	gap := func(amin, amax, bmin, bmax float64) float64 {
		if amax < bmin {
			return bmin - amax
		}
		if bmax < amin {
			return amin - bmax
		}
		return 0
	}
	dx := gap(b.Xmin, b.Xmax, o.Xmin, o.Xmax)
	dy := gap(b.Ymin, b.Ymax, o.Ymin, o.Ymax)
	dz := gap(b.Zmin, b.Zmax, o.Zmin, o.Zmax)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ToGBox converts to a GBOX carrying XYZ flags (no M, not geodetic).
func (b BOX3D) ToGBox() GBOX {
	return GBOX{
		Flags: NewFlags(true, false, true, false, false, false),
		Xmin:  b.Xmin, Xmax: b.Xmax,
		Ymin: b.Ymin, Ymax: b.Ymax,
		Zmin: b.Zmin, Zmax: b.Zmax,
	}
}
