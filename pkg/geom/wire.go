package geom

import "github.com/beetlebugorg/lwgeom/internal/lwgeom"

// Serialize encodes g into the self-describing binary wire format (the
// GSERIALIZED-equivalent envelope), including a computed bounding box when
// withBBox is true.
func Serialize(g *Geometry, withBBox bool) ([]byte, error) {
	gg := g.g
	if withBBox {
		var box lwgeom.GBOX
		box.Flags = gg.Flags.SetBBox(true)
		if err := lwgeom.CalculateGBox(gg, &box); err != nil {
			return nil, err
		}
		clone := gg.CloneDeep()
		clone.Flags = clone.Flags.SetBBox(true)
		clone.BBox = &box
		gg = clone
	}
	return lwgeom.Serialize(gg)
}

// Deserialize decodes buf, produced by Serialize, into a Geometry. The
// vertex data is copied out of buf, so the returned Geometry does not
// depend on buf after the call.
func Deserialize(buf []byte) (*Geometry, error) {
	g, err := lwgeom.Deserialize(buf)
	if err != nil {
		return nil, err
	}
	return &Geometry{g: g}, nil
}

// TWKBOptions configures TWKB encoding; see lwgeom.TWKBOptions for field
// semantics.
type TWKBOptions struct {
	Precision   int
	PrecisionZ  int
	PrecisionM  int
	IncludeBBox bool
	IncludeSize bool
	IDList      []int64
}

func (o TWKBOptions) toInternal() lwgeom.TWKBOptions {
	return lwgeom.TWKBOptions{
		Precision:   o.Precision,
		PrecisionZ:  o.PrecisionZ,
		PrecisionM:  o.PrecisionM,
		IncludeBBox: o.IncludeBBox,
		IncludeSize: o.IncludeSize,
		IDList:      o.IDList,
	}
}

// DefaultTWKBOptions returns a TWKBOptions with no precision loss beyond
// integer quantization at 0 decimal digits and no optional sections.
func DefaultTWKBOptions() TWKBOptions {
	return TWKBOptions{}
}

// EncodeTWKB encodes g in the compact delta-quantized TWKB format.
func EncodeTWKB(g *Geometry, opts TWKBOptions) ([]byte, error) {
	return lwgeom.EncodeTWKB(g.g, opts.toInternal())
}

// DecodeTWKB decodes a TWKB buffer into a Geometry (SRID is left at 0;
// TWKB carries no SRID).
func DecodeTWKB(buf []byte) (*Geometry, error) {
	g, err := lwgeom.DecodeTWKB(buf)
	if err != nil {
		return nil, err
	}
	return &Geometry{g: g}, nil
}
