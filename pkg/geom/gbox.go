package geom

import "github.com/beetlebugorg/lwgeom/internal/lwgeom"

// GBox is the public bounding-box value, wrapping internal/lwgeom's GBOX.
type GBox struct {
	b lwgeom.GBOX
}

// IsEmpty reports whether the box has no extent.
func (b GBox) IsEmpty() bool { return b.b.IsEmpty }

// Min returns the X/Y/Z/M minimums; unset dimensions read as zero.
func (b GBox) Min() Coord {
	return Coord{X: b.b.Xmin, Y: b.b.Ymin, Z: b.b.Zmin, M: b.b.Mmin}
}

// Max returns the X/Y/Z/M maximums; unset dimensions read as zero.
func (b GBox) Max() Coord {
	return Coord{X: b.b.Xmax, Y: b.b.Ymax, Z: b.b.Zmax, M: b.b.Mmax}
}

// String renders the box's "GBOX((min),(max))" text form.
func (b GBox) String() string { return b.b.ToString() }

// Contains reports whether p lies within b.
func (b GBox) Contains(p Coord) bool {
	return b.b.ContainsPoint3D(lwgeom.Coord{X: p.X, Y: p.Y, Z: p.Z})
}

// Overlaps reports whether a and b's extents intersect on every shared
// dimension.
func Overlaps(a, b GBox) (bool, error) {
	return lwgeom.Overlaps(a.b, b.b)
}

// Merge returns a new box that is the union of a and b.
func Merge(a, b GBox) (GBox, error) {
	out := b.b
	if err := lwgeom.Merge(a.b, &out); err != nil {
		return GBox{}, err
	}
	return GBox{b: out}, nil
}

// Expand returns a copy of b widened by d on every present dimension.
func (b GBox) Expand(d float64) GBox {
	return GBox{b: b.b.Expand(d)}
}
