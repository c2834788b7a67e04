package lwgeom

import (
	"encoding/binary"
	"strconv"
	"unsafe"
)

// Endian identifies a wire byte order, spec.md §4.C14.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

// NativeEndian reports the host's byte order, detected at runtime rather
// than assumed from GOARCH (original_source/liblwgeom/lwgeom_api.c's
// getMachineEndian, ported with the same pointer-aliasing trick: the first
// byte of a uint16 holding 1 is read through an unsafe.Pointer).
func NativeEndian() Endian {
	var i uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}

// ByteOrder returns the encoding/binary.ByteOrder matching e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PrintDouble renders f using the shortest decimal representation that
// round-trips back to the same float64 (Go's strconv already implements the
// Ryu-equivalent shortest-round-trip algorithm that original_source's
// lwprint_double hand-rolls; there is no ecosystem library in this corpus
// that improves on the standard library here, so this is one of the few
// ambient helpers left on stdlib by design).
func PrintDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
