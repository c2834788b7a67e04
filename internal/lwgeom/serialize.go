package lwgeom

import (
	"encoding/binary"
	"math"
)

// Serialize encodes g into the self-describing wire format, spec.md §4.C9:
// a 4-byte size, a 3-byte big-endian SRID, a 1-byte flags field, an
// optional bbox, and the recursive typed payload. All multi-byte integers
// in the payload are little-endian (spec.md §6). Field reads/writes use
// encoding/binary exclusively — no unsafe pointer casts, per spec.md §9 and
// the style of internal parsing elsewhere in this corpus.
func Serialize(g *Geometry) ([]byte, error) {
	var payload []byte
	appendPayload(&payload, g)

	bboxLen := 0
	hasBBox := g.Flags.HasBBox() && g.BBox != nil && !g.BBox.IsEmpty
	if hasBBox {
		bboxLen = SerializedSize(g.Flags) * 4
	}

	total := 4 + 3 + 1 + bboxLen + len(payload)
	buf := make([]byte, total)

	words := uint32((total + 3) / 4)
	binary.LittleEndian.PutUint32(buf[0:4], words<<2) // low 2 bits: varlena compat field, left 0

	srid := uint32(g.SRID) & 0xFFFFFF
	buf[4] = byte(srid >> 16)
	buf[5] = byte(srid >> 8)
	buf[6] = byte(srid)

	buf[7] = byte(g.Flags)

	off := 8
	if hasBBox {
		writeBBoxFloats(buf[off:off+bboxLen], g.Flags, *g.BBox)
		off += bboxLen
	}
	copy(buf[off:], payload)
	return buf, nil
}

func writeBBoxFloats(dst []byte, f Flags, b GBOX) {
	put := func(i int, v float32) {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], math.Float32bits(v))
	}
	put(0, NextFloatDown(b.Xmin))
	put(1, NextFloatUp(b.Xmax))
	put(2, NextFloatDown(b.Ymin))
	put(3, NextFloatUp(b.Ymax))
	idx := 4
	if f.HasZ() || f.Geodetic() {
		put(idx, NextFloatDown(b.Zmin))
		put(idx+1, NextFloatUp(b.Zmax))
		idx += 2
	}
	if f.HasM() && !f.Geodetic() {
		put(idx, NextFloatDown(b.Mmin))
		put(idx+1, NextFloatUp(b.Mmax))
	}
}

func readBBoxFloats(src []byte, f Flags) GBOX {
	get := func(i int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4 : i*4+4])))
	}
	b := GBOX{Flags: f}
	b.Xmin, b.Xmax = get(0), get(1)
	b.Ymin, b.Ymax = get(2), get(3)
	idx := 4
	if f.HasZ() || f.Geodetic() {
		b.Zmin, b.Zmax = get(idx), get(idx+1)
		idx += 2
	}
	if f.HasM() && !f.Geodetic() {
		b.Mmin, b.Mmax = get(idx), get(idx+1)
	}
	return b
}

func appendPayload(buf *[]byte, g *Geometry) {
	appendU32(buf, uint32(g.Type))
	switch g.Type.shape() {
	case shapeLeaf:
		appendPointArrayPayload(buf, g.Points)
	case shapePolygon:
		appendU32(buf, uint32(len(g.Rings)))
		npoints := make([]uint32, len(g.Rings))
		for i, r := range g.Rings {
			npoints[i] = uint32(r.NPoints())
		}
		for _, n := range npoints {
			appendU32(buf, n)
		}
		if len(g.Rings)%2 == 1 {
			appendU32(buf, 0) // padding when nrings is odd
		}
		for _, r := range g.Rings {
			appendCoords(buf, r)
		}
	case shapeCollection:
		appendU32(buf, uint32(len(g.Children)))
		for _, c := range g.Children {
			appendPayload(buf, c)
		}
	}
}

// Point's npoints field is 0 or 1 (spec.md §4.C9); all other leaf types
// carry their true npoints.
func appendPointArrayPayload(buf *[]byte, pa *PointArray) {
	appendU32(buf, uint32(pa.NPoints()))
	appendCoords(buf, pa)
}

func appendCoords(buf *[]byte, pa *PointArray) {
	n := pa.flags.NDims()
	np := pa.NPoints()
	for i := 0; i < np; i++ {
		tuple, _ := pa.GetPointInternal(i)
		for k := 0; k < n; k++ {
			appendF64(buf, tuple[k])
		}
	}
}

func appendU32(buf *[]byte, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	*buf = append(*buf, tmp[:]...)
}

func appendF64(buf *[]byte, v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	*buf = append(*buf, tmp[:]...)
}

// reader is a small cursor over the payload bytes, used only during
// deserialization.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) u32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, &ErrMalformedInput{Reason: "short read decoding uint32"}
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) f64() (float64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, &ErrMalformedInput{Reason: "short read decoding float64"}
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(r.buf[r.pos : r.pos+8]))
	r.pos += 8
	return v, nil
}

// Deserialize decodes the wire format back into a Geometry tree. Coordinate
// values are decoded into a fresh slice for each point array (wrapped
// read-only via ConstructReferenceData); the result does not alias buf and
// does not refer to it once Deserialize returns (spec.md §4.C9, §5).
func Deserialize(buf []byte) (*Geometry, error) {
	if len(buf) < 8 {
		return nil, &ErrMalformedInput{Reason: "buffer shorter than the fixed envelope header"}
	}
	sizeField := binary.LittleEndian.Uint32(buf[0:4])
	words := sizeField >> 2
	if int(words)*4 > len(buf) {
		return nil, &ErrMalformedInput{Reason: "declared size exceeds buffer length"}
	}
	srid := int32(uint32(buf[4])<<16 | uint32(buf[5])<<8 | uint32(buf[6]))
	flags := Flags(buf[7])

	off := 8
	var bbox *GBOX
	if flags.HasBBox() {
		bboxLen := SerializedSize(flags) * 4
		if off+bboxLen > len(buf) {
			return nil, &ErrMalformedInput{Reason: "buffer too short for declared bbox"}
		}
		b := readBBoxFloats(buf[off:off+bboxLen], flags)
		bbox = &b
		off += bboxLen
	}

	r := &reader{buf: buf, pos: off}
	g, err := readPayload(r, flags)
	if err != nil {
		return nil, err
	}
	g.SRID = srid
	g.BBox = bbox
	if bbox != nil {
		g.Flags = g.Flags.SetBBox(true)
	}
	return g, nil
}

func readPayload(r *reader, parentFlags Flags) (*Geometry, error) {
	typeVal, err := r.u32()
	if err != nil {
		return nil, err
	}
	t := Type(typeVal)
	g := &Geometry{Type: t, Flags: parentFlags.SetBBox(false)}

	switch t.shape() {
	case shapeLeaf:
		pa, err := readPointArray(r, parentFlags)
		if err != nil {
			return nil, err
		}
		g.Points = pa
	case shapePolygon:
		nrings, err := r.u32()
		if err != nil {
			return nil, err
		}
		npoints := make([]uint32, nrings)
		for i := range npoints {
			n, err := r.u32()
			if err != nil {
				return nil, err
			}
			npoints[i] = n
		}
		if nrings%2 == 1 {
			if _, err := r.u32(); err != nil { // padding
				return nil, err
			}
		}
		g.Rings = make([]*PointArray, nrings)
		for i := range g.Rings {
			pa, err := readCoordsN(r, parentFlags, int(npoints[i]))
			if err != nil {
				return nil, err
			}
			g.Rings[i] = pa
		}
	case shapeCollection:
		ngeoms, err := r.u32()
		if err != nil {
			return nil, err
		}
		g.Children = make([]*Geometry, ngeoms)
		for i := range g.Children {
			child, err := readPayload(r, parentFlags)
			if err != nil {
				return nil, err
			}
			if child.Flags.HasZ() != parentFlags.HasZ() || child.Flags.HasM() != parentFlags.HasM() {
				return nil, &ErrDimensionMismatch{Op: "Deserialize", WantZ: parentFlags.HasZ(), WantM: parentFlags.HasM(), GotZ: child.Flags.HasZ(), GotM: child.Flags.HasM()}
			}
			if !PermitsChild(t, child.Type) {
				return nil, &ErrInvalidType{Parent: t, Child: child.Type, Reason: "Invalid subtype for collection type"}
			}
			g.Children[i] = child
		}
	}
	return g, nil
}

func readPointArray(r *reader, flags Flags) (*PointArray, error) {
	npoints, err := r.u32()
	if err != nil {
		return nil, err
	}
	return readCoordsN(r, flags, int(npoints))
}

func readCoordsN(r *reader, flags Flags, npoints int) (*PointArray, error) {
	n := flags.NDims()
	data := make([]float64, npoints*n)
	for i := range data {
		v, err := r.f64()
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	return ConstructReferenceData(flags.HasZ(), flags.HasM(), npoints, data), nil
}
