package lwgeom

// The 3D oct-tree splits on 6 dimensions (xmin,xmax,ymin,ymax,zmin,zmax),
// spec.md §4.C13. BOX3D is always exactly 3-dimensional, so this is a thin
// wrapper converting to/from GIDX and delegating to the ND splitter in
// spgistnd.go rather than duplicating its interval arithmetic.

func box3DToGIDX(b BOX3D) *GIDX {
	g := NewGIDX(3)
	g.SetMin(0, float32(b.Xmin))
	g.SetMax(0, float32(b.Xmax))
	g.SetMin(1, float32(b.Ymin))
	g.SetMax(1, float32(b.Ymax))
	g.SetMin(2, float32(b.Zmin))
	g.SetMax(2, float32(b.Zmax))
	return g
}

func gidxToBox3D(g *GIDX, srid int32) BOX3D {
	return BOX3D{
		SRID: srid,
		Xmin: float64(g.Min(0)), Xmax: float64(g.Max(0)),
		Ymin: float64(g.Min(1)), Ymax: float64(g.Max(1)),
		Zmin: float64(g.Min(2)), Zmax: float64(g.Max(2)),
	}
}

// Choose3D returns the octant index (0..63) that box belongs to under
// centroid.
func Choose3D(centroid, box BOX3D) int {
	return ChooseND(box3DToGIDX(centroid), box3DToGIDX(box))
}

// PickSplit3D computes a centroid box (the per-axis median of every input
// box's bounds) and the octant assignment of each box under it.
func PickSplit3D(boxes []BOX3D) (BOX3D, []int, error) {
	gidxs := make([]*GIDX, len(boxes))
	for i, b := range boxes {
		gidxs[i] = box3DToGIDX(b)
	}
	centroidGIDX, assign, err := PickSplitND(gidxs)
	if err != nil {
		return BOX3D{}, nil, err
	}
	return gidxToBox3D(centroidGIDX, 0), assign, nil
}

// InnerConsistent3D reports, for each of the 64 octants of a 3D oct-tree
// node, whether that octant might still contain a leaf matching pred
// against query.
func InnerConsistent3D(query, centroid BOX3D, pred Predicate) []bool {
	return InnerConsistentND(box3DToGIDX(query), box3DToGIDX(centroid), pred)
}

// LeafConsistent3D evaluates pred exactly against a stored leaf box.
func LeafConsistent3D(leaf, query BOX3D, pred Predicate) bool {
	return LeafConsistentND(box3DToGIDX(leaf), box3DToGIDX(query), pred)
}
