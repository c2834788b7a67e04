package index

import (
	"testing"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

func mustPoint(t *testing.T, x, y float64) *geom.Geometry {
	t.Helper()
	p, err := geom.NewPoint(0, geom.Coord{X: x, Y: y}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestIndexInsertAndQuery(t *testing.T) {
	idx := New(2, 4)
	near, _ := geom.NewLineString(0, []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, false, false)
	far, _ := geom.NewLineString(0, []geom.Coord{{X: 100, Y: 100}, {X: 101, Y: 101}}, false, false)
	if err := idx.Insert("near", near); err != nil {
		t.Fatal(err)
	}
	if err := idx.Insert("far", far); err != nil {
		t.Fatal(err)
	}
	if idx.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", idx.Count())
	}

	queryArea, _ := geom.NewLineString(0, []geom.Coord{{X: -1, Y: -1}, {X: 2, Y: 2}}, false, false)
	bounds, err := queryArea.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	hits := idx.Query(bounds)
	if len(hits) != 1 || hits[0].ID != "near" {
		t.Errorf("Query() = %+v, want only the %q entry", hits, "near")
	}
}

func TestIndexInsertRejectsEmptyGeometry(t *testing.T) {
	idx := New(2, 4)
	line, _ := geom.NewLineString(0, nil, false, false)
	if err := idx.Insert("empty", line); err == nil {
		t.Error("expected an error inserting an empty geometry")
	}
}

func TestIndexQuerySortedByID(t *testing.T) {
	idx := New(2, 4)
	_ = idx.Insert("zeta", mustPoint(t, 1, 1))
	_ = idx.Insert("alpha", mustPoint(t, 1, 1))
	_ = idx.Insert("mid", mustPoint(t, 1, 1))

	area, _ := geom.NewLineString(0, []geom.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}, false, false)
	bounds, _ := area.BoundingBox()
	hits := idx.Query(bounds)
	if len(hits) != 3 {
		t.Fatalf("Query() returned %d hits, want 3", len(hits))
	}
	if hits[0].ID != "alpha" || hits[1].ID != "mid" || hits[2].ID != "zeta" {
		t.Errorf("Query() order = %v, want alpha,mid,zeta", []string{hits[0].ID, hits[1].ID, hits[2].ID})
	}
}
