package lwgeom

import "testing"

func squareRing() *PointArray {
	ring := ConstructEmpty(false, false, 0)
	for _, c := range []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}} {
		ring.AppendPoint(c, true)
	}
	return ring
}

func TestBuildRingTreeSegmentCount(t *testing.T) {
	ring := squareRing()
	tree := BuildRingTree(ring)
	if tree.nseg != ring.NPoints() {
		t.Errorf("nseg = %d, want %d", tree.nseg, ring.NPoints())
	}
}

func TestFindSegmentsCrossingMidHeight(t *testing.T) {
	ring := squareRing()
	tree := BuildRingTree(ring)
	segs := tree.FindSegmentsCrossing(5)
	if len(segs) == 0 {
		t.Fatal("expected at least one edge crossing y=5")
	}
	for _, i := range segs {
		a, _ := ring.GetPoint2D(i)
		b, _ := ring.GetPoint2D((i + 1) % ring.NPoints())
		ymin, ymax := a.Y, b.Y
		if ymin > ymax {
			ymin, ymax = ymax, ymin
		}
		if 5 < ymin || 5 > ymax {
			t.Errorf("segment %d reported as crossing y=5 but its interval is [%v,%v]", i, ymin, ymax)
		}
	}
}

func TestFindSegmentsCrossingOutsideRange(t *testing.T) {
	ring := squareRing()
	tree := BuildRingTree(ring)
	if segs := tree.FindSegmentsCrossing(100); len(segs) != 0 {
		t.Errorf("expected no segments crossing y=100, got %v", segs)
	}
}

func TestPointInRingInsideOutside(t *testing.T) {
	ring := squareRing()
	cache := NewRingTreeCache()
	if !PointInRing(cache, ring, Coord{X: 5, Y: 5}) {
		t.Error("(5,5) should be inside the square")
	}
	if PointInRing(cache, ring, Coord{X: 50, Y: 50}) {
		t.Error("(50,50) should be outside the square")
	}
}

func TestGetRingTreeCachesByPointerIdentity(t *testing.T) {
	cache := NewRingTreeCache()
	ring := squareRing()
	t1 := cache.GetRingTree(ring)
	t2 := cache.GetRingTree(ring)
	if t1 != t2 {
		t.Error("GetRingTree should return the same cached tree for the same PointArray pointer")
	}
	other := squareRing() // equal by value, distinct allocation
	t3 := cache.GetRingTree(other)
	if t3 == t1 {
		t.Error("a value-equal but distinct PointArray must not share a cache entry")
	}
}

func TestRingTreeCachesAreIndependent(t *testing.T) {
	ring := squareRing()
	a, b := NewRingTreeCache(), NewRingTreeCache()
	ta := a.GetRingTree(ring)
	tb := b.GetRingTree(ring)
	if ta == tb {
		t.Error("distinct RingTreeCache instances must not share cached trees")
	}
}
