package lwgeom

import "testing"

func TestPointArrayAppendAndGet(t *testing.T) {
	pa := ConstructEmpty(false, false, 0)
	pa.AppendPoint(Coord{X: 0, Y: 0}, true)
	pa.AppendPoint(Coord{X: 1, Y: 1}, true)
	if pa.NPoints() != 2 {
		t.Fatalf("NPoints() = %d, want 2", pa.NPoints())
	}
	c, err := pa.GetPoint2D(1)
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 1 || c.Y != 1 {
		t.Errorf("GetPoint2D(1) = %+v, want {1,1}", c)
	}
}

func TestPointArrayOutOfRange(t *testing.T) {
	pa := Construct(false, false, 2)
	if _, err := pa.GetPoint2D(5); err == nil {
		t.Error("expected an out-of-range error")
	}
	if _, err := pa.GetPoint2D(-1); err == nil {
		t.Error("expected an out-of-range error for negative index")
	}
}

func TestPointArrayAppendDropsDuplicate(t *testing.T) {
	pa := ConstructEmpty(false, false, 0)
	pa.AppendPoint(Coord{X: 5, Y: 5}, false)
	pa.AppendPoint(Coord{X: 5, Y: 5}, false)
	if pa.NPoints() != 1 {
		t.Errorf("NPoints() = %d, want 1 (duplicate should be dropped)", pa.NPoints())
	}
	pa.AppendPoint(Coord{X: 5, Y: 5}, true)
	if pa.NPoints() != 2 {
		t.Errorf("NPoints() = %d, want 2 (allowDuplicates=true must keep it)", pa.NPoints())
	}
}

func TestPointArrayIsClosed(t *testing.T) {
	pa := ConstructEmpty(false, false, 0)
	for _, c := range []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}} {
		pa.AppendPoint(c, true)
	}
	if !pa.IsClosed2D() {
		t.Error("expected ring to be closed")
	}
}

func TestPointArrayForceDims(t *testing.T) {
	pa := Construct(false, false, 1)
	_ = pa.SetPoint4D(0, Coord{X: 1, Y: 2})
	out := pa.ForceDims(true, false)
	c, _ := out.GetPoint3D(0)
	if c.Z != NoValue {
		t.Errorf("added Z = %v, want NoValue", c.Z)
	}
	// Idempotence: forcing the same dims again changes nothing observable.
	out2 := out.ForceDims(true, false)
	c2, _ := out2.GetPoint3D(0)
	if c2 != c {
		t.Errorf("ForceDims not idempotent: got %+v, want %+v", c2, c)
	}
}

func TestPointArrayStripNaN(t *testing.T) {
	pa := ConstructEmpty(false, false, 0)
	pa.AppendPoint(Coord{X: 0, Y: 0}, true)
	pa.AppendPoint(Coord{X: nan(), Y: 1}, true)
	pa.AppendPoint(Coord{X: 2, Y: 2}, true)
	removed := pa.StripNaN()
	if removed != 1 {
		t.Fatalf("StripNaN() removed %d, want 1", removed)
	}
	if pa.NPoints() != 2 {
		t.Errorf("NPoints() after strip = %d, want 2", pa.NPoints())
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestPointArrayReverse(t *testing.T) {
	pa := ConstructEmpty(false, false, 0)
	pa.AppendPoint(Coord{X: 0, Y: 0}, true)
	pa.AppendPoint(Coord{X: 1, Y: 1}, true)
	pa.AppendPoint(Coord{X: 2, Y: 2}, true)
	pa.Reverse()
	first, _ := pa.GetPoint2D(0)
	if first.X != 2 {
		t.Errorf("after Reverse, first point X = %v, want 2", first.X)
	}
}

func TestPointArrayCloneIsIndependent(t *testing.T) {
	pa := Construct(false, false, 1)
	_ = pa.SetPoint4D(0, Coord{X: 1, Y: 1})
	clone := pa.CloneDeep()
	_ = clone.SetPoint4D(0, Coord{X: 9, Y: 9})
	original, _ := pa.GetPoint2D(0)
	if original.X == 9 {
		t.Error("mutating the clone mutated the original")
	}
}
