package lwgeom

// GIDX is the variable-dimensional float bounding-box key used by index
// implementations (spec.md §4.C7): min[0],max[0],min[1],max[1],...,
// min[n-1],max[n-1]. Unlike GBOX it carries no flags; dimensionality is
// simply len(Bounds)/2.
type GIDX struct {
	Bounds []float32 // interleaved min0,max0,min1,max1,...
}

// NewGIDX allocates a GIDX for the given number of dimensions.
func NewGIDX(ndims int) *GIDX {
	return &GIDX{Bounds: make([]float32, ndims*2)}
}

// NDims returns the dimensionality of g.
func (g *GIDX) NDims() int {
	return len(g.Bounds) / 2
}

// Min returns the minimum of dimension d.
func (g *GIDX) Min(d int) float32 { return g.Bounds[2*d] }

// Max returns the maximum of dimension d.
func (g *GIDX) Max(d int) float32 { return g.Bounds[2*d+1] }

// SetMin sets the minimum of dimension d.
func (g *GIDX) SetMin(d int, v float32) { g.Bounds[2*d] = v }

// SetMax sets the maximum of dimension d.
func (g *GIDX) SetMax(d int, v float32) { g.Bounds[2*d+1] = v }

// Validate normalizes g so min <= max on every axis, swapping where needed.
// spec.md §4.C7: "gidx_validate (normalizes so min ≤ max on each axis)".
func (g *GIDX) Validate() {
	for d := 0; d < g.NDims(); d++ {
		if g.Min(d) > g.Max(d) {
			g.Bounds[2*d], g.Bounds[2*d+1] = g.Bounds[2*d+1], g.Bounds[2*d]
		}
	}
}

// SetUnknown fills every bound with a sentinel representing "unknown"
// (used when the source coordinate was NaN or infinite), spec.md's
// gidx_set_unknown.
func (g *GIDX) SetUnknown() {
	for d := 0; d < g.NDims(); d++ {
		g.SetMin(d, float32(gidxUnknownMin))
		g.SetMax(d, float32(gidxUnknownMax))
	}
}

const (
	gidxUnknownMin = -1e38
	gidxUnknownMax = 1e38
)

// minDims returns the smaller of a's and b's dimensionality, the range over
// which a dimension-by-dimension comparison is well-defined when the two
// keys don't share ndims (the ND SP-GiST splitter can compare boxes of
// differing dimensionality when some geometries omit Z or M).
func minDims(a, b *GIDX) int {
	na, nb := a.NDims(), b.NDims()
	if na < nb {
		return na
	}
	return nb
}

// Overlaps reports whether a and b overlap on every shared dimension.
func (a *GIDX) Overlaps(b *GIDX) bool {
	for d := 0; d < minDims(a, b); d++ {
		if a.Max(d) < b.Min(d) || a.Min(d) > b.Max(d) {
			return false
		}
	}
	return true
}

// Contains reports whether a fully contains b on every shared dimension,
// treating any dimension a lacks (relative to b) as unconstrained.
func (a *GIDX) Contains(b *GIDX) bool {
	for d := 0; d < minDims(a, b); d++ {
		if b.Min(d) < a.Min(d) || b.Max(d) > a.Max(d) {
			return false
		}
	}
	return true
}

// Equals reports exact equality across the shared dimensions and requires
// equal dimensionality.
func (a *GIDX) Equals(b *GIDX) bool {
	if a.NDims() != b.NDims() {
		return false
	}
	for i := range a.Bounds {
		if a.Bounds[i] != b.Bounds[i] {
			return false
		}
	}
	return true
}

// Copy returns a deep copy.
func (g *GIDX) Copy() *GIDX {
	cp := &GIDX{Bounds: make([]float32, len(g.Bounds))}
	copy(cp.Bounds, g.Bounds)
	return cp
}

// FromGBox converts a GBOX into a GIDX of the box's NDimsBox() dimensions,
// applying the float32 conservative-narrowing rule from spec.md §4.C7.
func FromGBox(b GBOX) *GIDX {
	n := b.Flags.NDimsBox()
	g := NewGIDX(n)
	g.SetMin(0, NextFloatDown(b.Xmin))
	g.SetMax(0, NextFloatUp(b.Xmax))
	g.SetMin(1, NextFloatDown(b.Ymin))
	g.SetMax(1, NextFloatUp(b.Ymax))
	idx := 2
	if b.Flags.HasZ() || b.Flags.Geodetic() {
		g.SetMin(idx, NextFloatDown(b.Zmin))
		g.SetMax(idx, NextFloatUp(b.Zmax))
		idx++
	}
	if b.Flags.HasM() && !b.Flags.Geodetic() {
		g.SetMin(idx, NextFloatDown(b.Mmin))
		g.SetMax(idx, NextFloatUp(b.Mmax))
	}
	return g
}
