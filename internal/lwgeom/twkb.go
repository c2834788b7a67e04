package lwgeom

import "math"

// TWKB (Tiny Well-Known Binary) is the precision-configurable, delta-integer
// quantized compact wire format, spec.md §4.C10. It only covers the seven
// "flat" OGC types; curved types (CircularString and friends) have no TWKB
// representation and EncodeTWKB rejects them.

const (
	twkbTypePoint              = 1
	twkbTypeLineString         = 2
	twkbTypePolygon            = 3
	twkbTypeMultiPoint         = 4
	twkbTypeMultiLineString    = 5
	twkbTypeMultiPolygon       = 6
	twkbTypeGeometryCollection = 7
)

const (
	twkbFlagBBox     = 1 << 0
	twkbFlagSize     = 1 << 1
	twkbFlagIDList   = 1 << 2
	twkbFlagExtended = 1 << 3
	twkbFlagEmpty    = 1 << 4
)

const (
	twkbExtFlagZ = 1 << 0
	twkbExtFlagM = 1 << 1
)

// TWKBOptions controls the encoder, spec.md §4.C10.
type TWKBOptions struct {
	Precision  int  // decimal digits of XY precision, may be negative
	PrecisionZ int  // decimal digits of Z precision
	PrecisionM int  // decimal digits of M precision
	IncludeBBox bool
	IncludeSize bool
	IDList     []int64 // one id per top-level member, for Multi*/collection types; nil if unused
}

func twkbTypeCode(t Type) (int, error) {
	switch t {
	case TypePoint:
		return twkbTypePoint, nil
	case TypeLineString:
		return twkbTypeLineString, nil
	case TypePolygon:
		return twkbTypePolygon, nil
	case TypeMultiPoint:
		return twkbTypeMultiPoint, nil
	case TypeMultiLineString:
		return twkbTypeMultiLineString, nil
	case TypeMultiPolygon:
		return twkbTypeMultiPolygon, nil
	case TypeGeometryCollection:
		return twkbTypeGeometryCollection, nil
	default:
		return 0, &ErrInvalidType{Child: t, Reason: "type has no TWKB representation"}
	}
}

func twkbTypeFromCode(code uint8) (Type, error) {
	switch code {
	case twkbTypePoint:
		return TypePoint, nil
	case twkbTypeLineString:
		return TypeLineString, nil
	case twkbTypePolygon:
		return TypePolygon, nil
	case twkbTypeMultiPoint:
		return TypeMultiPoint, nil
	case twkbTypeMultiLineString:
		return TypeMultiLineString, nil
	case twkbTypeMultiPolygon:
		return TypeMultiPolygon, nil
	case twkbTypeGeometryCollection:
		return TypeGeometryCollection, nil
	default:
		return 0, &ErrMalformedInput{Reason: "unrecognized TWKB type code"}
	}
}

func scaleFactor(precision int) float64 {
	return math.Pow(10, float64(precision))
}

// EncodeTWKB encodes g per opts.
func EncodeTWKB(g *Geometry, opts TWKBOptions) ([]byte, error) {
	typeCode, err := twkbTypeCode(g.Type)
	if err != nil {
		return nil, err
	}

	header := NewByteBuffer(64)

	precByte := byte(typeCode&0x0F) | (byte(ZigZagEncode8(int8(opts.Precision))&0x0F) << 4)
	header.AppendByte(precByte)

	hasZ := g.Flags.HasZ()
	hasM := g.Flags.HasM()
	extended := hasZ || hasM

	metaByte := byte(0)
	if opts.IncludeBBox {
		metaByte |= twkbFlagBBox
	}
	if opts.IncludeSize {
		metaByte |= twkbFlagSize
	}
	if len(opts.IDList) > 0 {
		metaByte |= twkbFlagIDList
	}
	if extended {
		metaByte |= twkbFlagExtended
	}
	if g.IsEmpty() {
		metaByte |= twkbFlagEmpty
	}
	header.AppendByte(metaByte)

	if extended {
		var extByte byte
		if hasZ {
			extByte |= twkbExtFlagZ
		}
		if hasM {
			extByte |= twkbExtFlagM
		}
		extByte |= byte(opts.PrecisionZ&0x07) << 2
		extByte |= byte(opts.PrecisionM&0x07) << 5
		header.AppendByte(extByte)
	}

	body := NewByteBuffer(256)
	last := Coord{}

	if opts.IncludeBBox && !g.IsEmpty() {
		var box GBOX
		box.Flags = g.Flags.SetBBox(true)
		if err := CalculateGBox(g, &box); err != nil {
			return nil, err
		}
		writeTWKBBBox(body, box, opts)
	}

	if !g.IsEmpty() {
		if err := writeTWKBBody(body, g, opts, &last); err != nil {
			return nil, err
		}
	}

	out := NewByteBuffer(header.Length() + body.Length() + 8)
	out.AppendByteBuffer(header)
	if opts.IncludeSize {
		out.AppendVarintU64(uint64(body.Length()))
	}
	out.AppendByteBuffer(body)
	return out.BytesCopy(), nil
}

func writeTWKBBBox(body *ByteBuffer, box GBOX, opts TWKBOptions) {
	writeAxis := func(min, max float64, precision int) {
		scale := scaleFactor(precision)
		qmin := int64(math.Round(min * scale))
		qmax := int64(math.Round(max * scale))
		body.AppendVarintS64(qmin)
		body.AppendVarintS64(qmax - qmin)
	}
	writeAxis(box.Xmin, box.Xmax, opts.Precision)
	writeAxis(box.Ymin, box.Ymax, opts.Precision)
	if box.Flags.HasZ() {
		writeAxis(box.Zmin, box.Zmax, opts.PrecisionZ)
	}
	if box.Flags.HasM() {
		writeAxis(box.Mmin, box.Mmax, opts.PrecisionM)
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// quantizeDelta computes the signed varint delta between v and the
// accumulator's current real value prevReal, along with the quantized real
// value v would take on if committed. It does not mutate the accumulator;
// the caller commits by assigning the returned quantizedReal back.
func quantizeDelta(v, prevReal float64, precision int) (delta int64, quantizedReal float64) {
	scale := scaleFactor(precision)
	q := math.Round(v * scale)
	prevQ := math.Round(prevReal * scale)
	return int64(q - prevQ), q / scale
}

// writeTWKBPointArray encodes pa's points, applying the duplicate-point
// suppression rule of spec.md §4.C10: within a linestring or ring, a point
// whose quantized delta from the last *kept* point is all-zero is dropped,
// as long as doing so wouldn't take the shape below minPoints. Mirrors
// ptarray_to_twkb_buf in lwout_twkb.c, including its minPoints-gated skip
// and its convention that the accumulator (last) only advances for points
// that are actually kept.
func writeTWKBPointArray(body *ByteBuffer, pa *PointArray, minPoints int, opts TWKBOptions, last *Coord) {
	np := pa.NPoints()
	if np == 0 {
		body.AppendVarintU64(0)
		return
	}

	hasZ, hasM := pa.flags.HasZ(), pa.flags.HasM()
	scratch := NewByteBuffer(np * 4)
	kept := 0
	maxPointsLeft := np

	for i := 0; i < np; i++ {
		c, _ := pa.GetPoint4D(i)

		dx, qx := quantizeDelta(c.X, last.X, opts.Precision)
		dy, qy := quantizeDelta(c.Y, last.Y, opts.Precision)
		diff := abs64(dx) + abs64(dy)

		var dz, dm int64
		var qz, qm float64
		if hasZ {
			dz, qz = quantizeDelta(c.Z, last.Z, opts.PrecisionZ)
			diff += abs64(dz)
		}
		if hasM {
			dm, qm = quantizeDelta(c.M, last.M, opts.PrecisionM)
			diff += abs64(dm)
		}

		if i > 0 && diff == 0 && maxPointsLeft > minPoints {
			maxPointsLeft--
			continue
		}

		kept++
		scratch.AppendVarintS64(dx)
		scratch.AppendVarintS64(dy)
		last.X, last.Y = qx, qy
		if hasZ {
			scratch.AppendVarintS64(dz)
			last.Z = qz
		}
		if hasM {
			scratch.AppendVarintS64(dm)
			last.M = qm
		}
	}

	body.AppendVarintU64(uint64(kept))
	body.AppendByteBuffer(scratch)
}

func writeTWKBBody(body *ByteBuffer, g *Geometry, opts TWKBOptions, last *Coord) error {
	hasZ, hasM := g.Flags.HasZ(), g.Flags.HasM()
	switch g.Type {
	case TypePoint:
		writeTWKBPointArray(body, g.Points, 1, opts, last)
	case TypeLineString:
		writeTWKBPointArray(body, g.Points, 2, opts, last)
	case TypePolygon:
		body.AppendVarintU64(uint64(len(g.Rings)))
		for _, r := range g.Rings {
			writeTWKBPointArray(body, r, 4, opts, last)
		}
	case TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon, TypeGeometryCollection:
		body.AppendVarintU64(uint64(len(g.Children)))
		if len(opts.IDList) > 0 {
			for _, id := range opts.IDList {
				body.AppendVarintS64(id)
			}
		}
		for _, child := range g.Children {
			if g.Type == TypeGeometryCollection {
				childCode, err := twkbTypeCode(child.Type)
				if err != nil {
					return err
				}
				childPrec := byte(childCode&0x0F) | (byte(ZigZagEncode8(int8(opts.Precision))&0x0F) << 4)
				body.AppendByte(childPrec)
				childMeta := byte(0)
				if child.IsEmpty() {
					childMeta |= twkbFlagEmpty
				}
				body.AppendByte(childMeta)
			}
			minPoints := 1
			switch child.Type {
			case TypeLineString:
				minPoints = 2
			}
			if child.Type == TypePolygon {
				body.AppendVarintU64(uint64(len(child.Rings)))
				for _, r := range child.Rings {
					writeTWKBPointArray(body, r, 4, opts, last)
				}
			} else {
				_ = hasZ
				_ = hasM
				writeTWKBPointArray(body, child.Points, minPoints, opts, last)
			}
		}
	}
	return nil
}

// DecodeTWKB decodes a TWKB buffer into a Geometry (SRID left at 0; TWKB
// carries no SRID).
func DecodeTWKB(buf []byte) (*Geometry, error) {
	bb := NewByteBuffer(len(buf))
	bb.SetReadBuffer(buf)

	precByte, err := bb.ReadByte()
	if err != nil {
		return nil, err
	}
	typeCode := precByte & 0x0F
	precision := int(ZigZagDecode8(precByte >> 4))

	metaByte, err := bb.ReadByte()
	if err != nil {
		return nil, err
	}
	hasBBox := metaByte&twkbFlagBBox != 0
	hasSize := metaByte&twkbFlagSize != 0
	hasIDList := metaByte&twkbFlagIDList != 0
	extended := metaByte&twkbFlagExtended != 0
	isEmpty := metaByte&twkbFlagEmpty != 0

	var hasZ, hasM bool
	var precZ, precM int
	if extended {
		extByte, err := bb.ReadByte()
		if err != nil {
			return nil, err
		}
		hasZ = extByte&twkbExtFlagZ != 0
		hasM = extByte&twkbExtFlagM != 0
		precZ = int((extByte >> 2) & 0x07)
		precM = int((extByte >> 5) & 0x07)
	}

	if hasSize {
		if _, err := bb.ReadVarintU64(); err != nil {
			return nil, err
		}
	}

	opts := TWKBOptions{Precision: precision, PrecisionZ: precZ, PrecisionM: precM}

	if hasBBox && !isEmpty {
		if err := skipTWKBBBox(bb, hasZ, hasM); err != nil {
			return nil, err
		}
	}

	t, err := twkbTypeFromCode(typeCode)
	if err != nil {
		return nil, err
	}
	last := Coord{}

	if isEmpty {
		return ConstructEmpty(t, 0, hasZ, hasM), nil
	}

	return readTWKBBody(bb, t, hasZ, hasM, hasIDList, opts, &last)
}

func skipTWKBBBox(bb *ByteBuffer, hasZ, hasM bool) error {
	n := 2
	if hasZ {
		n++
	}
	if hasM {
		n++
	}
	for i := 0; i < n; i++ {
		if _, err := bb.ReadVarintS64(); err != nil {
			return err
		}
		if _, err := bb.ReadVarintS64(); err != nil {
			return err
		}
	}
	return nil
}

func readTWKBPoint(bb *ByteBuffer, hasZ, hasM bool, opts TWKBOptions, last *Coord) (Coord, error) {
	dx, err := bb.ReadVarintS64()
	if err != nil {
		return Coord{}, err
	}
	dy, err := bb.ReadVarintS64()
	if err != nil {
		return Coord{}, err
	}
	scaleXY := scaleFactor(opts.Precision)
	qx := math.Round(last.X*scaleXY) + float64(dx)
	qy := math.Round(last.Y*scaleXY) + float64(dy)
	c := Coord{X: qx / scaleXY, Y: qy / scaleXY}
	last.X, last.Y = c.X, c.Y

	if hasZ {
		dz, err := bb.ReadVarintS64()
		if err != nil {
			return Coord{}, err
		}
		scaleZ := scaleFactor(opts.PrecisionZ)
		qz := math.Round(last.Z*scaleZ) + float64(dz)
		c.Z = qz / scaleZ
		last.Z = c.Z
	}
	if hasM {
		dm, err := bb.ReadVarintS64()
		if err != nil {
			return Coord{}, err
		}
		scaleM := scaleFactor(opts.PrecisionM)
		qm := math.Round(last.M*scaleM) + float64(dm)
		c.M = qm / scaleM
		last.M = c.M
	}
	return c, nil
}

func readTWKBPointArray(bb *ByteBuffer, hasZ, hasM bool, opts TWKBOptions, last *Coord) (*PointArray, error) {
	np, err := bb.ReadVarintU64()
	if err != nil {
		return nil, err
	}
	pa := ConstructEmpty(hasZ, hasM, int(np))
	for i := uint64(0); i < np; i++ {
		c, err := readTWKBPoint(bb, hasZ, hasM, opts, last)
		if err != nil {
			return nil, err
		}
		pa.AppendPoint(c, true)
	}
	return pa, nil
}

func readTWKBBody(bb *ByteBuffer, t Type, hasZ, hasM, hasIDList bool, opts TWKBOptions, last *Coord) (*Geometry, error) {
	g := &Geometry{Type: t, Flags: NewFlags(hasZ, hasM, false, false, false, false)}
	switch t {
	case TypePoint, TypeLineString:
		pa, err := readTWKBPointArray(bb, hasZ, hasM, opts, last)
		if err != nil {
			return nil, err
		}
		g.Points = pa
	case TypePolygon:
		nrings, err := bb.ReadVarintU64()
		if err != nil {
			return nil, err
		}
		g.Rings = make([]*PointArray, nrings)
		for i := range g.Rings {
			pa, err := readTWKBPointArray(bb, hasZ, hasM, opts, last)
			if err != nil {
				return nil, err
			}
			g.Rings[i] = pa
		}
	case TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon, TypeGeometryCollection:
		ngeoms, err := bb.ReadVarintU64()
		if err != nil {
			return nil, err
		}
		if hasIDList {
			for i := uint64(0); i < ngeoms; i++ {
				if _, err := bb.ReadVarintS64(); err != nil {
					return nil, err
				}
			}
		}
		g.Children = make([]*Geometry, ngeoms)
		for i := range g.Children {
			if t == TypeGeometryCollection {
				childPrec, err := bb.ReadByte()
				if err != nil {
					return nil, err
				}
				childMeta, err := bb.ReadByte()
				if err != nil {
					return nil, err
				}
				childType, err := twkbTypeFromCode(childPrec & 0x0F)
				if err != nil {
					return nil, err
				}
				if childMeta&twkbFlagEmpty != 0 {
					g.Children[i] = ConstructEmpty(childType, 0, hasZ, hasM)
					continue
				}
				child, err := readTWKBBody(bb, childType, hasZ, hasM, false, opts, last)
				if err != nil {
					return nil, err
				}
				g.Children[i] = child
				continue
			}
			var childType Type
			switch t {
			case TypeMultiPoint:
				childType = TypePoint
			case TypeMultiLineString:
				childType = TypeLineString
			case TypeMultiPolygon:
				childType = TypePolygon
			}
			child, err := readTWKBBody(bb, childType, hasZ, hasM, false, opts, last)
			if err != nil {
				return nil, err
			}
			g.Children[i] = child
		}
	}
	return g, nil
}
