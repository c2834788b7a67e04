package lwgeom

import "fmt"

// ErrDimensionMismatch indicates a hasZ/hasM mismatch between a parent and
// child geometry, or between two GBOX/GIDX values an algebra operation
// expects to share dimensionality.
type ErrDimensionMismatch struct {
	Op       string
	WantZ    bool
	WantM    bool
	GotZ     bool
	GotM     bool
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s: dimensions mismatch: want (Z=%v,M=%v), got (Z=%v,M=%v)",
		e.Op, e.WantZ, e.WantM, e.GotZ, e.GotM)
}

// ErrInvalidType indicates a type that is not accepted where it is used: a
// collection child type that is not permitted under its parent's
// type-constraint table, a type with no TWKB representation, or an
// operation applied to the wrong kind of geometry. An unknown TWKB type code
// is reported as ErrMalformedInput instead.
type ErrInvalidType struct {
	Parent Type
	Child  Type
	Reason string
}

func (e *ErrInvalidType) Error() string {
	if e.Parent != 0 {
		return fmt.Sprintf("invalid subtype %v for collection type %v: %s", e.Child, e.Parent, e.Reason)
	}
	return fmt.Sprintf("invalid geometry type %v: %s", e.Child, e.Reason)
}

// ErrMalformedInput indicates a serialized/TWKB buffer could not be parsed:
// short reads, varint overrun, or a size field that disagrees with the
// actual buffer length.
type ErrMalformedInput struct {
	Reason string
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// ErrOutOfRange indicates a point array index at or beyond npoints.
type ErrOutOfRange struct {
	Index, NPoints int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("point index %d out of range (npoints=%d)", e.Index, e.NPoints)
}

// ErrDegenerate is a downgraded failure for numeric edge cases (collinear
// arc, degenerate triangle) that spec.md §7 says should not be reported as
// hard errors; callers generally check a companion boolean instead of
// propagating this, but it is available for code paths that must return an
// error value.
type ErrDegenerate struct {
	Reason string
}

func (e *ErrDegenerate) Error() string {
	return fmt.Sprintf("degenerate geometry: %s", e.Reason)
}
