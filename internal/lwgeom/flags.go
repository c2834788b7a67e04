package lwgeom

// Flags packs the per-geometry dimension and behavior bits described in
// spec.md §3: hasZ, hasM, hasBBOX, isGeodetic, readonly, and solid (3D
// solid), plus two reserved bits.
type Flags uint8

const (
	flagZ = 1 << iota
	flagM
	flagBBox
	flagGeodetic
	flagReadonly
	flagSolid
)

// NewFlags builds a Flags value from the dimension and behavior bits.
func NewFlags(hasZ, hasM, hasBBox, geodetic, readonly, solid bool) Flags {
	var f Flags
	if hasZ {
		f |= flagZ
	}
	if hasM {
		f |= flagM
	}
	if hasBBox {
		f |= flagBBox
	}
	if geodetic {
		f |= flagGeodetic
	}
	if readonly {
		f |= flagReadonly
	}
	if solid {
		f |= flagSolid
	}
	return f
}

func (f Flags) HasZ() bool       { return f&flagZ != 0 }
func (f Flags) HasM() bool       { return f&flagM != 0 }
func (f Flags) HasBBox() bool    { return f&flagBBox != 0 }
func (f Flags) Geodetic() bool   { return f&flagGeodetic != 0 }
func (f Flags) Readonly() bool   { return f&flagReadonly != 0 }
func (f Flags) Solid() bool      { return f&flagSolid != 0 }

func (f Flags) SetZ(v bool) Flags       { return setBit(f, flagZ, v) }
func (f Flags) SetM(v bool) Flags       { return setBit(f, flagM, v) }
func (f Flags) SetBBox(v bool) Flags    { return setBit(f, flagBBox, v) }
func (f Flags) SetGeodetic(v bool) Flags { return setBit(f, flagGeodetic, v) }
func (f Flags) SetReadonly(v bool) Flags { return setBit(f, flagReadonly, v) }
func (f Flags) SetSolid(v bool) Flags   { return setBit(f, flagSolid, v) }

func setBit(f Flags, bit Flags, v bool) Flags {
	if v {
		return f | bit
	}
	return f &^ bit
}

// NDims returns the coordinate dimensionality: 2 + hasZ + hasM.
func (f Flags) NDims() int {
	n := 2
	if f.HasZ() {
		n++
	}
	if f.HasM() {
		n++
	}
	return n
}

// NDimsBox returns the dimensionality used for bounding-box storage: 3 when
// geodetic (always XYZ on the unit sphere), otherwise the same as NDims.
func (f Flags) NDimsBox() int {
	if f.Geodetic() {
		return 3
	}
	return f.NDims()
}
