package lwgeom

// Type is the on-wire geometry type code, spec.md §6. Values are part of
// the wire contract and must not be renumbered.
type Type uint32

const (
	TypePoint              Type = 1
	TypeLineString         Type = 2
	TypePolygon            Type = 3
	TypeMultiPoint         Type = 4
	TypeMultiLineString    Type = 5
	TypeMultiPolygon       Type = 6
	TypeGeometryCollection Type = 7
	TypeCircularString     Type = 8
	TypeCompoundCurve      Type = 9
	TypeCurvePolygon       Type = 10
	TypeMultiCurve         Type = 11
	TypeMultiSurface       Type = 12
	TypePolyhedralSurface  Type = 15
	TypeTIN                Type = 16
	TypeTriangle           Type = 17
)

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	case TypeCircularString:
		return "CircularString"
	case TypeCompoundCurve:
		return "CompoundCurve"
	case TypeCurvePolygon:
		return "CurvePolygon"
	case TypeMultiCurve:
		return "MultiCurve"
	case TypeMultiSurface:
		return "MultiSurface"
	case TypePolyhedralSurface:
		return "PolyhedralSurface"
	case TypeTIN:
		return "TIN"
	case TypeTriangle:
		return "Triangle"
	default:
		return "Unknown"
	}
}

// shape classifies how a type's payload recurses, spec.md §3.
type shape int

const (
	shapeLeaf shape = iota // owns one point array
	shapePolygon
	shapeCollection
)

func (t Type) shape() shape {
	switch t {
	case TypePoint, TypeLineString, TypeTriangle, TypeCircularString:
		return shapeLeaf
	case TypePolygon:
		return shapePolygon
	default:
		return shapeCollection
	}
}

// IsLeaf reports whether t owns a single point array.
func (t Type) IsLeaf() bool { return t.shape() == shapeLeaf }

// IsPolygon reports whether t owns an ordered sequence of rings.
func (t Type) IsPolygon() bool { return t.shape() == shapePolygon }

// IsCollection reports whether t owns an ordered sequence of child
// geometries.
func (t Type) IsCollection() bool { return t.shape() == shapeCollection }

// permittedChildren implements spec.md §3's parent/child type-constraint
// table for collections.
var permittedChildren = map[Type]map[Type]bool{
	TypeMultiPoint:         {TypePoint: true},
	TypeMultiLineString:    {TypeLineString: true},
	TypeMultiPolygon:       {TypePolygon: true},
	TypeCompoundCurve:      {TypeLineString: true, TypeCircularString: true},
	TypeCurvePolygon:       {TypeLineString: true, TypeCircularString: true, TypeCompoundCurve: true},
	TypeMultiCurve:         {TypeCircularString: true, TypeLineString: true, TypeCompoundCurve: true},
	TypeMultiSurface:       {TypePolygon: true, TypeCurvePolygon: true},
	TypePolyhedralSurface:  {TypePolygon: true},
	TypeTIN:                {TypeTriangle: true},
	TypeGeometryCollection: nil, // nil means "any type permitted"
}

// PermitsChild reports whether child is a legal member of a collection of
// type parent.
func PermitsChild(parent, child Type) bool {
	allowed, known := permittedChildren[parent]
	if !known {
		return false
	}
	if allowed == nil {
		return true // GeometryCollection: any type
	}
	return allowed[child]
}
