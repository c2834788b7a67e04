// Package index provides a bulk spatial index over geom.Geometry values,
// spec.md §4.C11/SPEC_FULL.md's domain-stack expansion: an R-tree keyed by
// each geometry's Cartesian bounding box, for fast region queries over
// large geometry collections (the workload the ring R-tree's single-ring
// scan-line structure doesn't address).
package index

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

// Entry is one indexed geometry plus caller-supplied metadata.
type Entry struct {
	ID       string
	Geometry *geom.Geometry
	box      rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e Entry) Bounds() rtreego.Rect { return e.box }

// Index is a bulk R-tree spatial index over geom.Geometry values.
type Index struct {
	entries []Entry
	rtree   *rtreego.Rtree
}

// New builds an empty index. minChildren/maxChildren tune the R-tree node
// fanout (rtreego.NewTree's own parameters); 25/50 mirrors the teacher's
// chart index and is a reasonable default for geometry-sized datasets.
func New(minChildren, maxChildren int) *Index {
	return &Index{rtree: rtreego.NewTree(2, minChildren, maxChildren)}
}

// Insert adds g under id, keyed by the bounding box that g.BoundingBox
// computes.
func (idx *Index) Insert(id string, g *geom.Geometry) error {
	box, err := g.BoundingBox()
	if err != nil {
		return fmt.Errorf("index: compute bounding box for %q: %w", id, err)
	}
	if box.IsEmpty() {
		return fmt.Errorf("index: cannot insert empty geometry %q", id)
	}
	min, max := box.Min(), box.Max()
	point := rtreego.Point{min.X, min.Y}
	lengths := []float64{max.X - min.X, max.Y - min.Y}
	rect, err := rtreego.NewRect(point, nonZero(lengths))
	if err != nil {
		return fmt.Errorf("index: build R-tree rectangle for %q: %w", id, err)
	}
	entry := Entry{ID: id, Geometry: g, box: rect}
	idx.entries = append(idx.entries, entry)
	idx.rtree.Insert(entry)
	return nil
}

// nonZero widens any zero-length side slightly; rtreego.NewRect rejects
// degenerate (point or line) rectangles with zero-length sides.
func nonZero(lengths []float64) []float64 {
	const epsilon = 1e-9
	out := make([]float64, len(lengths))
	for i, l := range lengths {
		if l <= 0 {
			out[i] = epsilon
		} else {
			out[i] = l
		}
	}
	return out
}

// Query returns every indexed entry whose bounding box intersects bounds,
// sorted by ID for deterministic output.
func (idx *Index) Query(bounds geom.GBox) []Entry {
	min, max := bounds.Min(), bounds.Max()
	point := rtreego.Point{min.X, min.Y}
	lengths := nonZero([]float64{max.X - min.X, max.Y - min.Y})
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}
	hits := idx.rtree.SearchIntersect(rect)
	result := make([]Entry, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.(Entry))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Count returns the number of indexed entries.
func (idx *Index) Count() int { return len(idx.entries) }

// All returns every indexed entry.
func (idx *Index) All() []Entry { return idx.entries }
