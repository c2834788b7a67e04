package lwgeom

import (
	"math"
	"sort"
)

// GIDXMaxNodes bounds how many children a single SP-GiST oct-tree node may
// have: 2^(2*ndims), capped at ndims==4 (256 children), spec.md §4.C13.
const GIDXMaxNodes = 256

// spgistNDMaxDims is the largest dimensionality the ND oct-tree splitter
// supports; beyond it 2^(2*ndims) would exceed GIDXMaxNodes.
const spgistNDMaxDims = 4

// Predicate enumerates the 16 spatial relations the oct-tree's consistency
// functions can prune or test against, spec.md §4.C13 / GLOSSARY.
type Predicate int

const (
	PredOverlaps Predicate = iota
	PredContains
	PredContainedBy
	PredSame
	PredLeft
	PredOverLeft
	PredRight
	PredOverRight
	PredBelow
	PredOverBelow
	PredAbove
	PredOverAbove
	PredFront
	PredOverFront
	PredBack
	PredOverBack
)

// ChooseND returns the octant index (0..2^(2n)-1) that box belongs to under
// centroid, by setting bit 2d when box's dimension-d minimum is at or past
// the centroid's, and bit 2d+1 likewise for the maximum.
func ChooseND(centroid, box *GIDX) int {
	n := minDims(centroid, box)
	var octant int
	for d := 0; d < n; d++ {
		if box.Min(d) >= centroid.Min(d) {
			octant |= 1 << uint(2*d)
		}
		if box.Max(d) >= centroid.Max(d) {
			octant |= 1 << uint(2*d+1)
		}
	}
	return octant
}

// PickSplitND computes a centroid GIDX (the per-axis median of every input
// box's bounds, not the mean) and the octant assignment of each box under
// it, spec.md §4.C13's ND PickSplit. Mirrors
// gserialized_spgist_picksplit_nd in gserialized_spgist_nd.c: each axis's
// mins and maxes are sorted independently and the element at index
// len(boxes)/2 is taken as that axis's centroid bound.
func PickSplitND(boxes []*GIDX) (*GIDX, []int, error) {
	if len(boxes) == 0 {
		return nil, nil, &ErrMalformedInput{Reason: "PickSplitND requires at least one box"}
	}
	n := boxes[0].NDims()
	if n > spgistNDMaxDims {
		return nil, nil, &ErrMalformedInput{Reason: "GIDX dimensionality exceeds the ND oct-tree's supported maximum"}
	}
	for _, b := range boxes {
		if b.NDims() != n {
			return nil, nil, &ErrDimensionMismatch{Op: "PickSplitND"}
		}
	}
	median := len(boxes) / 2
	centroid := NewGIDX(n)
	for d := 0; d < n; d++ {
		lows := make([]float64, len(boxes))
		highs := make([]float64, len(boxes))
		for i, b := range boxes {
			lows[i] = float64(b.Min(d))
			highs[i] = float64(b.Max(d))
		}
		sort.Float64s(lows)
		sort.Float64s(highs)
		centroid.SetMin(d, float32(lows[median]))
		centroid.SetMax(d, float32(highs[median]))
	}
	assign := make([]int, len(boxes))
	for i, b := range boxes {
		assign[i] = ChooseND(centroid, b)
	}
	return centroid, assign, nil
}

func bitSet(v, pos int) bool { return v&(1<<uint(pos)) != 0 }

// axisInterval returns the (lo, hi) bound implied for one side (min or max)
// of an octant's dimension, given the bit set during ChooseND and the
// centroid value for that side.
func axisInterval(bit bool, c float32) (lo, hi float64) {
	if bit {
		return float64(c), math.Inf(1)
	}
	return math.Inf(-1), float64(c)
}

type dirKind int

const (
	dirLeftLike      dirKind = iota // b.Max < o.Min
	dirOverLeftLike                 // b.Max <= o.Max
	dirRightLike                    // b.Min > o.Max
	dirOverRightLike                // b.Min >= o.Min
)

func predDirKind(pred Predicate) (axis int, kind dirKind, ok bool) {
	switch pred {
	case PredLeft:
		return 0, dirLeftLike, true
	case PredOverLeft:
		return 0, dirOverLeftLike, true
	case PredRight:
		return 0, dirRightLike, true
	case PredOverRight:
		return 0, dirOverRightLike, true
	case PredBelow:
		return 1, dirLeftLike, true
	case PredOverBelow:
		return 1, dirOverLeftLike, true
	case PredAbove:
		return 1, dirRightLike, true
	case PredOverAbove:
		return 1, dirOverRightLike, true
	case PredFront:
		return 2, dirLeftLike, true
	case PredOverFront:
		return 2, dirOverLeftLike, true
	case PredBack:
		return 2, dirRightLike, true
	case PredOverBack:
		return 2, dirOverRightLike, true
	}
	return 0, 0, false
}

// InnerConsistentND reports, for every octant of centroid's dimensionality,
// whether that octant might still contain a leaf matching pred against
// query. It is conservative: a true result may still turn out empty once
// LeafConsistentND runs, but a false result is guaranteed to contain no
// match, so the caller may prune that subtree.
func InnerConsistentND(query, centroid *GIDX, pred Predicate) []bool {
	n := centroid.NDims()
	total := 1 << uint(2*n)
	out := make([]bool, total)
	for oct := 0; oct < total; oct++ {
		out[oct] = octantPossibleND(oct, n, query, centroid, pred)
	}
	return out
}

func octantPossibleND(oct, n int, query, centroid *GIDX, pred Predicate) bool {
	qn := query.NDims()
	switch pred {
	case PredOverlaps:
		for d := 0; d < n && d < qn; d++ {
			minLo, _ := axisInterval(bitSet(oct, 2*d), centroid.Min(d))
			_, maxHi := axisInterval(bitSet(oct, 2*d+1), centroid.Max(d))
			if minLo > float64(query.Max(d)) || maxHi < float64(query.Min(d)) {
				return false
			}
		}
		return true
	case PredContains:
		for d := 0; d < n && d < qn; d++ {
			minLo, _ := axisInterval(bitSet(oct, 2*d), centroid.Min(d))
			_, maxHi := axisInterval(bitSet(oct, 2*d+1), centroid.Max(d))
			if minLo > float64(query.Min(d)) || maxHi < float64(query.Max(d)) {
				return false
			}
		}
		return true
	case PredContainedBy:
		for d := 0; d < n && d < qn; d++ {
			_, minHi := axisInterval(bitSet(oct, 2*d), centroid.Min(d))
			maxLo, _ := axisInterval(bitSet(oct, 2*d+1), centroid.Max(d))
			if minHi < float64(query.Min(d)) || maxLo > float64(query.Max(d)) {
				return false
			}
		}
		return true
	case PredSame:
		return octantPossibleND(oct, n, query, centroid, PredContains) &&
			octantPossibleND(oct, n, query, centroid, PredContainedBy)
	default:
		axis, kind, ok := predDirKind(pred)
		if !ok || axis >= n || axis >= qn {
			return true
		}
		return directionalPossible(oct, centroid, query, axis, kind)
	}
}

func directionalPossible(oct int, centroid, query *GIDX, axis int, kind dirKind) bool {
	minBit := bitSet(oct, 2*axis)
	maxBit := bitSet(oct, 2*axis+1)
	_, minHi := axisInterval(minBit, centroid.Min(axis))
	maxLo, maxHi := axisInterval(maxBit, centroid.Max(axis))
	switch kind {
	case dirLeftLike:
		return maxLo < float64(query.Min(axis))
	case dirOverLeftLike:
		return maxLo <= float64(query.Max(axis))
	case dirRightLike:
		return minHi > float64(query.Max(axis))
	case dirOverRightLike:
		return minHi >= float64(query.Min(axis))
	}
	_ = maxHi
	return true
}

// LeafConsistentND evaluates pred exactly against a stored leaf box, for
// final confirmation after InnerConsistentND pruning has selected a
// candidate subtree.
func LeafConsistentND(leaf, query *GIDX, pred Predicate) bool {
	switch pred {
	case PredOverlaps:
		return leaf.Overlaps(query)
	case PredContains:
		return leaf.Contains(query)
	case PredContainedBy:
		return query.Contains(leaf)
	case PredSame:
		return leaf.Equals(query)
	default:
		axis, kind, ok := predDirKind(pred)
		if !ok || axis >= leaf.NDims() || axis >= query.NDims() {
			return false
		}
		switch kind {
		case dirLeftLike:
			return leaf.Max(axis) < query.Min(axis)
		case dirOverLeftLike:
			return leaf.Max(axis) <= query.Max(axis)
		case dirRightLike:
			return leaf.Min(axis) > query.Max(axis)
		case dirOverRightLike:
			return leaf.Min(axis) >= query.Min(axis)
		}
		return false
	}
}
