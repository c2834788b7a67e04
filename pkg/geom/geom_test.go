package geom

import (
	"testing"

	"github.com/beetlebugorg/lwgeom/internal/lwgeom"
)

func TestNewPointAndVertices(t *testing.T) {
	p, err := NewPoint(4326, Coord{X: 1, Y: 2}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.SRID() != 4326 {
		t.Errorf("SRID() = %d, want 4326", p.SRID())
	}
	verts := p.Vertices()
	if len(verts) != 1 || verts[0].X != 1 || verts[0].Y != 2 {
		t.Errorf("Vertices() = %+v, want a single {1,2}", verts)
	}
}

func TestNewLineStringVertexOrder(t *testing.T) {
	coords := []Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	ls, err := NewLineString(0, coords, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if ls.NumPoints() != 3 {
		t.Fatalf("NumPoints() = %d, want 3", ls.NumPoints())
	}
	got := ls.Vertices()
	for i, c := range coords {
		if got[i].X != c.X || got[i].Y != c.Y {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], c)
		}
	}
}

func TestNewPolygonRings(t *testing.T) {
	outer := []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	hole := []Coord{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 2}}
	poly, err := NewPolygon(0, [][]Coord{outer, hole}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	rings := poly.Rings()
	if len(rings) != 2 {
		t.Fatalf("len(Rings()) = %d, want 2", len(rings))
	}
	if len(rings[0]) != 5 || len(rings[1]) != 4 {
		t.Errorf("ring sizes = %d,%d; want 5,4", len(rings[0]), len(rings[1]))
	}
}

func TestNewPolygonRejectsOpenRing(t *testing.T) {
	open := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if _, err := NewPolygon(0, [][]Coord{open}, false, false); err == nil {
		t.Error("expected an error constructing a Polygon with an unclosed ring")
	}
}

func TestNewCollectionMembers(t *testing.T) {
	p1, _ := NewPoint(0, Coord{X: 1, Y: 1}, false, false)
	p2, _ := NewPoint(0, Coord{X: 2, Y: 2}, false, false)
	mp, err := NewCollection(TypeMultiPoint, 0, []*Geometry{p1, p2}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	members := mp.Members()
	if len(members) != 2 {
		t.Fatalf("len(Members()) = %d, want 2", len(members))
	}
	if members[1].Vertices()[0].X != 2 {
		t.Errorf("second member X = %v, want 2", members[1].Vertices()[0].X)
	}
}

func TestNewCollectionRejectsWrongMemberType(t *testing.T) {
	p1, _ := NewPoint(0, Coord{X: 1, Y: 1}, false, false)
	ls, _ := NewLineString(0, []Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, false, false)
	if _, err := NewCollection(TypeMultiPoint, 0, []*Geometry{p1, ls}, false, false); err == nil {
		t.Error("expected MultiPoint to reject a LineString member")
	}
}

func TestGeometryCloneIndependence(t *testing.T) {
	p, _ := NewPoint(0, Coord{X: 1, Y: 1}, false, false)
	clone := p.Clone()
	clone.g.Points.SetPoint4D(0, lwgeom.Coord{X: 9, Y: 9})
	if p.Vertices()[0].X == 9 {
		t.Error("Clone must not share backing memory with the original")
	}
}

func TestGeometryForceDims(t *testing.T) {
	p, _ := NewPoint(0, Coord{X: 1, Y: 2}, false, false)
	withZ := p.ForceDims(true, false)
	if withZ.Vertices()[0].Z != 0 {
		t.Errorf("forced Z = %v, want 0 (NoValue maps to the zero Coord field)", withZ.Vertices()[0].Z)
	}
}

func TestGeometryBoundingBox(t *testing.T) {
	ls, _ := NewLineString(0, []Coord{{X: 0, Y: 0}, {X: 5, Y: 5}}, false, false)
	box, err := ls.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	if box.Max().X != 5 || box.Max().Y != 5 {
		t.Errorf("bbox max = %+v, want {5,5,...}", box.Max())
	}
}

func TestGeometryTypeName(t *testing.T) {
	p, _ := NewPoint(0, Coord{X: 0, Y: 0}, false, false)
	if p.TypeName() != "Point" {
		t.Errorf("TypeName() = %q, want Point", p.TypeName())
	}
}
