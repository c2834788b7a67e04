package lwgeom

import "math"

// Coord is a single coordinate tuple with all four possible ordinates.
// Only the ordinates selected by a PointArray's flags are meaningful; the
// rest carry the NO_VALUE sentinel (0.0) per spec.md §4.C6's force_dims.
type Coord struct {
	X, Y, Z, M float64
}

// NoValue is the sentinel used to zero-fill a dimension added by ForceDims.
const NoValue = 0.0

// PointArray is a flat, packed array of 2D/3D/3DM/4D coordinate tuples,
// spec.md §4.C5. Dimensionality is fixed at construction. A PointArray
// constructed with ConstructReferenceData borrows its backing slice rather
// than owning it (flags.Readonly() is true); CloneDeep always copies.
type PointArray struct {
	flags  Flags
	coords []float64 // flat, ndims-per-point; aliases external storage when Readonly
}

// Construct builds an owning, zero-initialized point array of the given
// length and dimensionality.
func Construct(hasZ, hasM bool, npoints int) *PointArray {
	f := NewFlags(hasZ, hasM, false, false, false, false)
	return &PointArray{
		flags:  f,
		coords: make([]float64, npoints*f.NDims()),
	}
}

// ConstructEmpty builds an owning, zero-length point array with capacity
// reserved for initialCapacity points, ready to grow via AppendPoint.
func ConstructEmpty(hasZ, hasM bool, initialCapacity int) *PointArray {
	f := NewFlags(hasZ, hasM, false, false, false, false)
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &PointArray{
		flags:  f,
		coords: make([]float64, 0, initialCapacity*f.NDims()),
	}
}

// ConstructReferenceData builds a non-owning point array that aliases ptr.
// The caller guarantees ptr outlives the returned PointArray (spec.md §5).
func ConstructReferenceData(hasZ, hasM bool, npoints int, ptr []float64) *PointArray {
	f := NewFlags(hasZ, hasM, false, false, true, false)
	return &PointArray{flags: f, coords: ptr[:npoints*f.NDims()]}
}

// Flags returns the array's dimension/behavior flags.
func (pa *PointArray) Flags() Flags { return pa.flags }

// NPoints returns the number of coordinate tuples stored.
func (pa *PointArray) NPoints() int {
	n := pa.flags.NDims()
	if n == 0 {
		return 0
	}
	return len(pa.coords) / n
}

func (pa *PointArray) checkIndex(i int) error {
	if i < 0 || i >= pa.NPoints() {
		return &ErrOutOfRange{Index: i, NPoints: pa.NPoints()}
	}
	return nil
}

// GetPoint2D returns the X/Y of point i.
func (pa *PointArray) GetPoint2D(i int) (Coord, error) {
	if err := pa.checkIndex(i); err != nil {
		return Coord{}, err
	}
	n := pa.flags.NDims()
	off := i * n
	return Coord{X: pa.coords[off], Y: pa.coords[off+1]}, nil
}

// GetPoint3D returns X/Y/Z of point i (Z is 0 if the array has no Z).
func (pa *PointArray) GetPoint3D(i int) (Coord, error) {
	c, err := pa.GetPoint2D(i)
	if err != nil {
		return c, err
	}
	if pa.flags.HasZ() {
		c.Z = pa.coords[i*pa.flags.NDims()+2]
	}
	return c, nil
}

// GetPoint4D returns all four ordinates of point i.
func (pa *PointArray) GetPoint4D(i int) (Coord, error) {
	if err := pa.checkIndex(i); err != nil {
		return Coord{}, err
	}
	n := pa.flags.NDims()
	off := i * n
	c := Coord{X: pa.coords[off], Y: pa.coords[off+1]}
	idx := off + 2
	if pa.flags.HasZ() {
		c.Z = pa.coords[idx]
		idx++
	}
	if pa.flags.HasM() {
		c.M = pa.coords[idx]
	}
	return c, nil
}

// GetPointInternal returns a direct view of point i's ordinates in storage
// order (X,Y[,Z][,M]), without copying into a Coord.
func (pa *PointArray) GetPointInternal(i int) ([]float64, error) {
	if err := pa.checkIndex(i); err != nil {
		return nil, err
	}
	n := pa.flags.NDims()
	off := i * n
	return pa.coords[off : off+n], nil
}

// SetPoint4D writes only the ordinates present per flags.
func (pa *PointArray) SetPoint4D(i int, c Coord) error {
	if err := pa.checkIndex(i); err != nil {
		return err
	}
	n := pa.flags.NDims()
	off := i * n
	pa.coords[off] = c.X
	pa.coords[off+1] = c.Y
	idx := off + 2
	if pa.flags.HasZ() {
		pa.coords[idx] = c.Z
		idx++
	}
	if pa.flags.HasM() {
		pa.coords[idx] = c.M
	}
	return nil
}

// AppendPoint appends a coordinate tuple. If allowDuplicates is false and
// the new point is identical (in 2D) to the current last point, it is
// silently dropped (mirrors liblwgeom's ptarray_append_point semantics).
func (pa *PointArray) AppendPoint(c Coord, allowDuplicates bool) {
	if !allowDuplicates && pa.NPoints() > 0 {
		last, _ := pa.GetPoint2D(pa.NPoints() - 1)
		if last.X == c.X && last.Y == c.Y {
			return
		}
	}
	n := pa.flags.NDims()
	tuple := make([]float64, n)
	tuple[0], tuple[1] = c.X, c.Y
	idx := 2
	if pa.flags.HasZ() {
		tuple[idx] = c.Z
		idx++
	}
	if pa.flags.HasM() {
		tuple[idx] = c.M
	}
	pa.coords = append(pa.coords, tuple...)
}

// RemovePoint removes the point at index i.
func (pa *PointArray) RemovePoint(i int) error {
	if err := pa.checkIndex(i); err != nil {
		return err
	}
	n := pa.flags.NDims()
	off := i * n
	pa.coords = append(pa.coords[:off], pa.coords[off+n:]...)
	return nil
}

// InsertPoint inserts c before index i (i == NPoints() appends).
func (pa *PointArray) InsertPoint(i int, c Coord) error {
	np := pa.NPoints()
	if i < 0 || i > np {
		return &ErrOutOfRange{Index: i, NPoints: np}
	}
	n := pa.flags.NDims()
	tuple := make([]float64, n)
	tuple[0], tuple[1] = c.X, c.Y
	idx := 2
	if pa.flags.HasZ() {
		tuple[idx] = c.Z
		idx++
	}
	if pa.flags.HasM() {
		tuple[idx] = c.M
	}
	off := i * n
	pa.coords = append(pa.coords[:off], append(tuple, pa.coords[off:]...)...)
	return nil
}

// Reverse reverses point order in place.
func (pa *PointArray) Reverse() {
	n := pa.flags.NDims()
	np := pa.NPoints()
	for i, j := 0, np-1; i < j; i, j = i+1, j-1 {
		oi, oj := i*n, j*n
		for k := 0; k < n; k++ {
			pa.coords[oi+k], pa.coords[oj+k] = pa.coords[oj+k], pa.coords[oi+k]
		}
	}
}

// Clone returns a copy. If the array is read-only, Clone shares no backing
// memory either (spec.md §3: "a cloned geometry ... shares no backing
// memory"); only CloneDeep is named separately in the source for emphasis,
// so both behave identically here.
func (pa *PointArray) Clone() *PointArray {
	return pa.CloneDeep()
}

// CloneDeep always deep-copies, even if the source is read-only.
func (pa *PointArray) CloneDeep() *PointArray {
	cp := make([]float64, len(pa.coords))
	copy(cp, pa.coords)
	return &PointArray{flags: pa.flags.SetReadonly(false), coords: cp}
}

// IsClosed2D reports whether the first and last points are equal in X/Y.
func (pa *PointArray) IsClosed2D() bool {
	np := pa.NPoints()
	if np == 0 {
		return false
	}
	first, _ := pa.GetPoint2D(0)
	last, _ := pa.GetPoint2D(np - 1)
	return first.X == last.X && first.Y == last.Y
}

// IsClosed3D additionally requires Z to match when the array has Z.
func (pa *PointArray) IsClosed3D() bool {
	if !pa.IsClosed2D() {
		return false
	}
	if !pa.flags.HasZ() {
		return true
	}
	np := pa.NPoints()
	first, _ := pa.GetPoint3D(0)
	last, _ := pa.GetPoint3D(np - 1)
	return first.Z == last.Z
}

// IsCounterClockwise reports whether the XY projection has positive signed
// area (the shoelace formula), i.e. the ring winds counter-clockwise.
func (pa *PointArray) IsCounterClockwise() bool {
	np := pa.NPoints()
	if np < 3 {
		return false
	}
	var area float64
	for i := 0; i < np; i++ {
		a, _ := pa.GetPoint2D(i)
		b, _ := pa.GetPoint2D((i + 1) % np)
		area += a.X*b.Y - b.X*a.Y
	}
	return area > 0
}

// ForceDims returns a deep copy where every ordinate present per the
// requested (hasZ, hasM) is populated; added dimensions are zero-filled
// with NoValue, dropped dimensions are discarded.
func (pa *PointArray) ForceDims(hasZ, hasM bool) *PointArray {
	np := pa.NPoints()
	out := Construct(hasZ, hasM, np)
	for i := 0; i < np; i++ {
		c, _ := pa.GetPoint4D(i)
		if !hasZ {
			c.Z = NoValue
		}
		if !hasM {
			c.M = NoValue
		}
		_ = out.SetPoint4D(i, c)
	}
	return out
}

// StripNaN compacts out points whose X or Y is NaN, in place, per spec.md
// §3/§9 "GEOS friendliness". Returns the number of points removed.
func (pa *PointArray) StripNaN() int {
	n := pa.flags.NDims()
	np := pa.NPoints()
	kept := pa.coords[:0:0]
	removed := 0
	for i := 0; i < np; i++ {
		off := i * n
		x, y := pa.coords[off], pa.coords[off+1]
		if math.IsNaN(x) || math.IsNaN(y) {
			removed++
			continue
		}
		kept = append(kept, pa.coords[off:off+n]...)
	}
	pa.coords = kept
	return removed
}
