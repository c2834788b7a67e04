// Package geom is the friendly public surface over internal/lwgeom's
// wire-format mechanics: a single Geometry type, constructors for every
// supported shape, and Encode/Decode helpers for both the serialized and
// TWKB wire formats.
package geom

import "github.com/beetlebugorg/lwgeom/internal/lwgeom"

// Geometry wraps the internal tagged recursive geometry record in an
// unexported field, so callers outside this package build one only through
// the exported constructors below. NewPolygon and NewCollection check each
// ring or member as it is added; NewLineString, NewCircularString and
// NewTriangle take the coordinates as given and do not check their count.
type Geometry struct {
	g *lwgeom.Geometry
}

// Coord is a coordinate tuple; unset ordinates for a lower-dimension
// geometry are ignored.
type Coord struct {
	X, Y, Z, M float64
}

func toInternal(c Coord) lwgeom.Coord {
	return lwgeom.Coord{X: c.X, Y: c.Y, Z: c.Z, M: c.M}
}

func fromInternal(c lwgeom.Coord) Coord {
	return Coord{X: c.X, Y: c.Y, Z: c.Z, M: c.M}
}

// SRID returns the geometry's spatial reference identifier, 0 if unset.
func (g *Geometry) SRID() int32 { return g.g.SRID }

// IsEmpty reports whether the geometry has no vertices anywhere in its
// subtree.
func (g *Geometry) IsEmpty() bool { return g.g.IsEmpty() }

// NumPoints returns the total vertex count across the whole geometry.
func (g *Geometry) NumPoints() int { return g.g.CountVertices() }

// TypeName returns the OGC type name ("Point", "Polygon", ...).
func (g *Geometry) TypeName() string { return g.g.Type.String() }

// NewPoint constructs a single-vertex Point geometry.
func NewPoint(srid int32, c Coord, hasZ, hasM bool) (*Geometry, error) {
	g := lwgeom.ConstructEmpty(lwgeom.TypePoint, srid, hasZ, hasM)
	if err := g.AddPoint(toInternal(c), true); err != nil {
		return nil, err
	}
	return &Geometry{g: g}, nil
}

// NewLineString constructs a LineString from an ordered vertex list.
func NewLineString(srid int32, coords []Coord, hasZ, hasM bool) (*Geometry, error) {
	return newVertexGeometry(lwgeom.TypeLineString, srid, coords, hasZ, hasM)
}

// NewCircularString constructs a CircularString; coords must have 0 or an
// odd count >= 3 (each consecutive triple describes one arc).
func NewCircularString(srid int32, coords []Coord, hasZ, hasM bool) (*Geometry, error) {
	return newVertexGeometry(lwgeom.TypeCircularString, srid, coords, hasZ, hasM)
}

// NewTriangle constructs a Triangle from exactly 4 coordinates (a closed
// 3-vertex ring).
func NewTriangle(srid int32, coords []Coord, hasZ, hasM bool) (*Geometry, error) {
	return newVertexGeometry(lwgeom.TypeTriangle, srid, coords, hasZ, hasM)
}

func newVertexGeometry(t lwgeom.Type, srid int32, coords []Coord, hasZ, hasM bool) (*Geometry, error) {
	g := lwgeom.ConstructEmpty(t, srid, hasZ, hasM)
	for _, c := range coords {
		if err := g.AddPoint(toInternal(c), true); err != nil {
			return nil, err
		}
	}
	return &Geometry{g: g}, nil
}

// NewPolygon constructs a Polygon from an outer ring and zero or more hole
// rings, each a closed ring of at least 4 coordinates.
func NewPolygon(srid int32, rings [][]Coord, hasZ, hasM bool) (*Geometry, error) {
	g := lwgeom.ConstructEmpty(lwgeom.TypePolygon, srid, hasZ, hasM)
	for _, ring := range rings {
		pa := lwgeom.ConstructEmpty(hasZ, hasM, len(ring))
		for _, c := range ring {
			pa.AppendPoint(toInternal(c), true)
		}
		if err := g.AddRing(pa); err != nil {
			return nil, err
		}
	}
	return &Geometry{g: g}, nil
}

// NewCollection constructs a collection geometry (MultiPoint,
// MultiLineString, MultiPolygon, GeometryCollection, CompoundCurve,
// CurvePolygon, MultiCurve, MultiSurface, PolyhedralSurface, or TIN) from
// its member geometries. The members are adopted by reference: callers
// should not reuse a member Geometry value (including as a member of a
// second collection) after this call returns.
func NewCollection(t Type, srid int32, members []*Geometry, hasZ, hasM bool) (*Geometry, error) {
	g := lwgeom.ConstructEmpty(lwgeom.Type(t), srid, hasZ, hasM)
	for _, m := range members {
		if err := g.AddGeom(m.g); err != nil {
			return nil, err
		}
	}
	return &Geometry{g: g}, nil
}

// Vertices returns every coordinate in the geometry's own point array; it
// is only meaningful for leaf types (Point, LineString, CircularString,
// Triangle) and returns nil for Polygon and collection types.
func (g *Geometry) Vertices() []Coord {
	if g.g.Points == nil {
		return nil
	}
	np := g.g.Points.NPoints()
	out := make([]Coord, np)
	for i := 0; i < np; i++ {
		c, _ := g.g.Points.GetPoint4D(i)
		out[i] = fromInternal(c)
	}
	return out
}

// Rings returns the Polygon's rings (ring 0 is the outer ring); nil for
// non-Polygon types.
func (g *Geometry) Rings() [][]Coord {
	if g.g.Rings == nil {
		return nil
	}
	out := make([][]Coord, len(g.g.Rings))
	for i, r := range g.g.Rings {
		np := r.NPoints()
		ring := make([]Coord, np)
		for j := 0; j < np; j++ {
			c, _ := r.GetPoint4D(j)
			ring[j] = fromInternal(c)
		}
		out[i] = ring
	}
	return out
}

// Members returns the collection's member geometries; nil for non-
// collection types.
func (g *Geometry) Members() []*Geometry {
	if g.g.Children == nil {
		return nil
	}
	out := make([]*Geometry, len(g.g.Children))
	for i, c := range g.g.Children {
		out[i] = &Geometry{g: c}
	}
	return out
}

// Clone returns a deep copy sharing no backing memory with g.
func (g *Geometry) Clone() *Geometry {
	return &Geometry{g: g.g.CloneDeep()}
}

// ForceDims returns a copy with exactly the requested Z/M dimensionality,
// zero-filling any added dimension.
func (g *Geometry) ForceDims(hasZ, hasM bool) *Geometry {
	return &Geometry{g: g.g.ForceDims(hasZ, hasM)}
}

// StripNaN removes any vertex whose X or Y is NaN, in place, across the
// whole subtree.
func (g *Geometry) StripNaN() {
	g.g.StripNaN()
}

// BoundingBox computes the geometry's Cartesian bounding box on every call
// and stores the result on the underlying geometry record.
func (g *Geometry) BoundingBox() (GBox, error) {
	var box lwgeom.GBOX
	box.Flags = g.g.Flags.SetBBox(true)
	if err := lwgeom.CalculateGBox(g.g, &box); err != nil {
		return GBox{}, err
	}
	g.g.BBox = &box
	return GBox{b: box}, nil
}
