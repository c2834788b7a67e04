package geom

import "github.com/beetlebugorg/lwgeom/internal/lwgeom"

// Type is the public geometry type tag, matching the internal wire codes.
type Type uint32

const (
	TypePoint              Type = Type(lwgeom.TypePoint)
	TypeLineString         Type = Type(lwgeom.TypeLineString)
	TypePolygon            Type = Type(lwgeom.TypePolygon)
	TypeMultiPoint         Type = Type(lwgeom.TypeMultiPoint)
	TypeMultiLineString    Type = Type(lwgeom.TypeMultiLineString)
	TypeMultiPolygon       Type = Type(lwgeom.TypeMultiPolygon)
	TypeGeometryCollection Type = Type(lwgeom.TypeGeometryCollection)
	TypeCircularString     Type = Type(lwgeom.TypeCircularString)
	TypeCompoundCurve      Type = Type(lwgeom.TypeCompoundCurve)
	TypeCurvePolygon       Type = Type(lwgeom.TypeCurvePolygon)
	TypeMultiCurve         Type = Type(lwgeom.TypeMultiCurve)
	TypeMultiSurface       Type = Type(lwgeom.TypeMultiSurface)
	TypePolyhedralSurface  Type = Type(lwgeom.TypePolyhedralSurface)
	TypeTIN                Type = Type(lwgeom.TypeTIN)
	TypeTriangle           Type = Type(lwgeom.TypeTriangle)
)

func (t Type) String() string { return lwgeom.Type(t).String() }
