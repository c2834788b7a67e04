package lwgeom

// Geometry is the tagged recursive geometry record, spec.md §3. Its Type
// determines which payload field is meaningful: Points for leaf types
// (Point, LineString, Triangle, CircularString), Rings for Polygon (ring 0
// is the outer ring, 1..N are holes), or Children for every collection
// flavor (MultiPoint, MultiLineString, ..., GeometryCollection).
type Geometry struct {
	Type  Type
	Flags Flags
	SRID  int32 // 0 means unknown
	BBox  *GBOX // optional; may be set without Flags.HasBBox(), and Serialize writes it only when that flag is set too

	Points   *PointArray // leaf payload
	Rings    []*PointArray // polygon payload
	Children []*Geometry // collection payload
}

// ConstructEmpty returns an empty geometry of the given type and
// dimensionality, ready for incremental construction via AddPoint/AddRing/
// AddGeom.
func ConstructEmpty(t Type, srid int32, hasZ, hasM bool) *Geometry {
	f := NewFlags(hasZ, hasM, false, false, false, false)
	g := &Geometry{Type: t, Flags: f, SRID: srid}
	switch t.shape() {
	case shapeLeaf:
		g.Points = ConstructEmpty(hasZ, hasM, 0)
	case shapePolygon:
		g.Rings = nil
	case shapeCollection:
		g.Children = make([]*Geometry, 0, 1)
	}
	return g
}

// IsEmpty reports whether the geometry has no vertices anywhere in its
// subtree.
func (g *Geometry) IsEmpty() bool {
	switch g.Type.shape() {
	case shapeLeaf:
		return g.Points == nil || g.Points.NPoints() == 0
	case shapePolygon:
		return len(g.Rings) == 0
	default:
		if len(g.Children) == 0 {
			return true
		}
		for _, c := range g.Children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	}
}

// CountVertices returns the total vertex count across the whole subtree.
func (g *Geometry) CountVertices() int {
	switch g.Type.shape() {
	case shapeLeaf:
		if g.Points == nil {
			return 0
		}
		return g.Points.NPoints()
	case shapePolygon:
		n := 0
		for _, r := range g.Rings {
			n += r.NPoints()
		}
		return n
	default:
		n := 0
		for _, c := range g.Children {
			n += c.CountVertices()
		}
		return n
	}
}

// AddPoint appends a coordinate to a leaf geometry's own point array. It is
// an error to call this on a Polygon or collection type.
func (g *Geometry) AddPoint(c Coord, allowDuplicates bool) error {
	if !g.Type.IsLeaf() {
		return &ErrInvalidType{Child: g.Type, Reason: "AddPoint requires a leaf geometry type"}
	}
	if g.Points == nil {
		g.Points = ConstructEmpty(g.Flags.HasZ(), g.Flags.HasM(), 1)
	}
	g.Points.AppendPoint(c, allowDuplicates)
	return nil
}

// AddRing appends ring to a Polygon's ring sequence. A non-empty ring must
// have at least 4 points and be closed in 2D (spec.md §3 invariant);
// AddRing does not close an open ring itself.
func (g *Geometry) AddRing(ring *PointArray) error {
	if g.Type != TypePolygon {
		return &ErrInvalidType{Child: g.Type, Reason: "AddRing requires a Polygon"}
	}
	if ring.flags.HasZ() != g.Flags.HasZ() || ring.flags.HasM() != g.Flags.HasM() {
		return &ErrDimensionMismatch{Op: "AddRing", WantZ: g.Flags.HasZ(), WantM: g.Flags.HasM(), GotZ: ring.flags.HasZ(), GotM: ring.flags.HasM()}
	}
	if ring.NPoints() > 0 {
		if ring.NPoints() < 4 {
			return &ErrInvalidType{Reason: "ring must have at least 4 points when non-empty"}
		}
		if !ring.IsClosed2D() {
			return &ErrInvalidType{Reason: "ring must be closed (first point == last point)"}
		}
	}
	g.Rings = append(g.Rings, ring)
	return nil
}

// AddGeom appends child to a collection, enforcing spec.md §3's dimension
// match and type-constraint table, and spec.md §4.C6's duplicate-child
// no-op (appending the same *Geometry pointer twice is a no-op, preventing
// accidental double ownership).
func (g *Geometry) AddGeom(child *Geometry) error {
	if !g.Type.IsCollection() {
		return &ErrInvalidType{Child: g.Type, Reason: "AddGeom requires a collection type"}
	}
	for _, existing := range g.Children {
		if existing == child {
			return nil // duplicate-child no-op
		}
	}
	if child.Flags.HasZ() != g.Flags.HasZ() || child.Flags.HasM() != g.Flags.HasM() {
		return &ErrDimensionMismatch{Op: "AddGeom", WantZ: g.Flags.HasZ(), WantM: g.Flags.HasM(), GotZ: child.Flags.HasZ(), GotM: child.Flags.HasM()}
	}
	if !PermitsChild(g.Type, child.Type) {
		return &ErrInvalidType{Parent: g.Type, Child: child.Type, Reason: "type not permitted under parent"}
	}
	g.Children = append(g.Children, child)
	return nil
}

// Clone returns a deep copy sharing no backing memory with g, matching
// spec.md §3's lifecycle rule ("a cloned geometry deep-copies owned
// children and shares no backing memory").
func (g *Geometry) Clone() *Geometry {
	return g.CloneDeep()
}

// CloneDeep always deep-copies.
func (g *Geometry) CloneDeep() *Geometry {
	cp := &Geometry{Type: g.Type, Flags: g.Flags.SetReadonly(false), SRID: g.SRID}
	if g.BBox != nil {
		b := *g.BBox
		cp.BBox = &b
	}
	if g.Points != nil {
		cp.Points = g.Points.CloneDeep()
	}
	if g.Rings != nil {
		cp.Rings = make([]*PointArray, len(g.Rings))
		for i, r := range g.Rings {
			cp.Rings[i] = r.CloneDeep()
		}
	}
	if g.Children != nil {
		cp.Children = make([]*Geometry, len(g.Children))
		for i, c := range g.Children {
			cp.Children[i] = c.CloneDeep()
		}
	}
	return cp
}

// Release marks g as released. The Go garbage collector reclaims storage
// automatically; this method exists for API parity with the source's
// explicit recursive destructor and as a place a caller's ownership intent
// is documented, not because anything must run.
func (g *Geometry) Release() {}

// ForceDims returns a deep copy where every point array in the subtree has
// exactly the requested dimensionality, zero-filling added dimensions with
// NoValue (spec.md §4.C6).
func (g *Geometry) ForceDims(hasZ, hasM bool) *Geometry {
	f := g.Flags.SetZ(hasZ).SetM(hasM)
	cp := &Geometry{Type: g.Type, Flags: f, SRID: g.SRID}
	switch g.Type.shape() {
	case shapeLeaf:
		if g.Points != nil {
			cp.Points = g.Points.ForceDims(hasZ, hasM)
		}
	case shapePolygon:
		cp.Rings = make([]*PointArray, len(g.Rings))
		for i, r := range g.Rings {
			cp.Rings[i] = r.ForceDims(hasZ, hasM)
		}
	case shapeCollection:
		cp.Children = make([]*Geometry, len(g.Children))
		for i, c := range g.Children {
			cp.Children[i] = c.ForceDims(hasZ, hasM)
		}
	}
	return cp
}

// StripNaN applies PointArray.StripNaN across every owned point array in
// the subtree (spec.md §3/§9's GEOS-friendliness pass).
func (g *Geometry) StripNaN() {
	switch g.Type.shape() {
	case shapeLeaf:
		if g.Points != nil {
			g.Points.StripNaN()
		}
	case shapePolygon:
		for _, r := range g.Rings {
			r.StripNaN()
		}
	case shapeCollection:
		for _, c := range g.Children {
			c.StripNaN()
		}
	}
}
