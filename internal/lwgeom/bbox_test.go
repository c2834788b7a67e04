package lwgeom

import (
	"math"
	"testing"
)

func TestCalculateGBoxLeaf(t *testing.T) {
	g := ConstructEmpty(TypeLineString, 0, false, false)
	_ = g.AddPoint(Coord{X: 0, Y: 0}, true)
	_ = g.AddPoint(Coord{X: 3, Y: 4}, true)

	box := NewEmptyGBox(flags2D())
	if err := CalculateGBox(g, &box); err != nil {
		t.Fatal(err)
	}
	if box.Xmin != 0 || box.Xmax != 3 || box.Ymin != 0 || box.Ymax != 4 {
		t.Errorf("bbox = %+v, want [0,3]x[0,4]", box)
	}
}

func TestCalculateGBoxPolygonIgnoresHoles(t *testing.T) {
	g := ConstructEmpty(TypePolygon, 0, false, false)
	outer := ConstructEmpty(false, false, 0)
	for _, c := range []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}} {
		outer.AppendPoint(c, true)
	}
	_ = g.AddRing(outer)
	hole := ConstructEmpty(false, false, 0)
	for _, c := range []Coord{{X: 100, Y: 100}, {X: 101, Y: 100}, {X: 101, Y: 101}, {X: 100, Y: 100}} {
		hole.AppendPoint(c, true)
	}
	_ = g.AddRing(hole)

	box := NewEmptyGBox(flags2D())
	if err := CalculateGBox(g, &box); err != nil {
		t.Fatal(err)
	}
	if box.Xmax != 10 || box.Ymax != 10 {
		t.Errorf("polygon bbox must only consider the outer ring, got %+v", box)
	}
}

func TestCalculateGBoxEmptyCollectionErrors(t *testing.T) {
	g := ConstructEmpty(TypeMultiPoint, 0, false, false)
	box := NewEmptyGBox(flags2D())
	if err := CalculateGBox(g, &box); err == nil {
		t.Error("expected an error computing the bbox of an empty collection")
	}
}

func TestArcBBoxFullCircle(t *testing.T) {
	// p1 == p3, a "full circle" through p2 on the opposite side.
	p1 := Coord{X: 1, Y: 0}
	p2 := Coord{X: -1, Y: 0}
	p3 := Coord{X: 1, Y: 0}
	box := arcBBox(p1, p2, p3)
	if box.Xmin != -1 || box.Xmax != 1 {
		t.Errorf("full-circle bbox = %+v, want X in [-1,1]", box)
	}
}

func TestArcBBoxCollinearFallsBackToSegmentBox(t *testing.T) {
	p1 := Coord{X: 0, Y: 0}
	p2 := Coord{X: 1, Y: 0}
	p3 := Coord{X: 2, Y: 0}
	box := arcBBox(p1, p2, p3)
	if box.Xmin != 0 || box.Xmax != 2 || box.Ymin != 0 || box.Ymax != 0 {
		t.Errorf("collinear arc bbox = %+v, want the segment's own bbox", box)
	}
}

func TestArcBBoxQuarterArcIncludesCardinal(t *testing.T) {
	// A quarter circle from angle 0 to angle pi/2 around the origin, radius 1,
	// passing through 45 degrees: the bbox must include the cardinal point at
	// angle pi/2 (0,1) since the sweep passes through it, while NOT needing
	// (-1,0) or (0,-1).
	p1 := Coord{X: 1, Y: 0}
	p2 := Coord{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}
	p3 := Coord{X: 0, Y: 1}
	box := arcBBox(p1, p2, p3)
	if box.Ymax < 1-1e-9 {
		t.Errorf("quarter-arc bbox = %+v, want Ymax to reach 1 (cardinal point included)", box)
	}
	if box.Xmin < -1e-9 {
		t.Errorf("quarter-arc bbox = %+v, want Xmin to stay at 0, not extend negative", box)
	}
}

func TestCalcCircularStringBoxRejectsEvenPointCount(t *testing.T) {
	pa := ConstructEmpty(false, false, 0)
	pa.AppendPoint(Coord{X: 0, Y: 0}, true)
	pa.AppendPoint(Coord{X: 1, Y: 1}, true)
	out := NewEmptyGBox(flags2D())
	if err := calcCircularStringBox(pa, &out); err == nil {
		t.Error("expected an error for an even point count")
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := normalizeAngle(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > 1e-9 {
		t.Errorf("normalizeAngle(-pi/2) = %v, want 3pi/2", got)
	}
	if got := normalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("normalizeAngle(3pi) = %v, want pi", got)
	}
}
