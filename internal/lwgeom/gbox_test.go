package lwgeom

import "testing"

func flags2D() Flags { return NewFlags(false, false, false, false, false, false) }

func box2D(xmin, ymin, xmax, ymax float64) GBOX {
	return GBOX{Flags: flags2D(), Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax}
}

func TestGBoxMergeGrowsB(t *testing.T) {
	a := box2D(0, 0, 5, 5)
	b := box2D(3, 3, 10, 10)
	if err := Merge(a, &b); err != nil {
		t.Fatal(err)
	}
	if b.Xmin != 0 || b.Xmax != 10 || b.Ymin != 0 || b.Ymax != 10 {
		t.Errorf("Merge result = %+v, want enclosing box", b)
	}
}

func TestGBoxMergeIntoEmpty(t *testing.T) {
	a := box2D(1, 1, 2, 2)
	b := NewEmptyGBox(flags2D())
	if err := Merge(a, &b); err != nil {
		t.Fatal(err)
	}
	if b.IsEmpty || b.Xmin != 1 || b.Xmax != 2 {
		t.Errorf("Merge into an empty box should adopt a's extent, got %+v", b)
	}
}

func TestGBoxMergeDimMismatch(t *testing.T) {
	a := box2D(0, 0, 1, 1)
	zFlags := NewFlags(true, false, false, false, false, false)
	b := GBOX{Flags: zFlags}
	if err := Merge(a, &b); err == nil {
		t.Error("expected a dimension mismatch error merging a 2D box into a Z-flagged box")
	}
}

func TestGBoxOverlaps(t *testing.T) {
	a := box2D(0, 0, 5, 5)
	b := box2D(4, 4, 10, 10)
	ok, err := Overlaps(a, b)
	if err != nil || !ok {
		t.Errorf("Overlaps(a,b) = %v, %v; want true, nil", ok, err)
	}
	c := box2D(6, 6, 10, 10)
	ok, err = Overlaps(a, c)
	if err != nil || ok {
		t.Errorf("Overlaps(a,c) = %v, %v; want false, nil", ok, err)
	}
}

func TestGBoxOverlapsEmpty(t *testing.T) {
	a := box2D(0, 0, 1, 1)
	empty := NewEmptyGBox(flags2D())
	ok, err := Overlaps(a, empty)
	if err != nil || ok {
		t.Error("an empty box should never overlap anything")
	}
}

func TestGBoxSame(t *testing.T) {
	a := box2D(0, 0, 1, 1)
	b := box2D(0, 0, 1, 1)
	ok, err := Same(a, b)
	if err != nil || !ok {
		t.Errorf("Same(a,b) = %v, %v; want true, nil", ok, err)
	}
	c := box2D(0, 0, 1, 2)
	ok, _ = Same(a, c)
	if ok {
		t.Error("Same(a,c) should be false")
	}
}

func TestGBoxExpand(t *testing.T) {
	a := box2D(1, 1, 2, 2)
	out := a.Expand(1)
	if out.Xmin != 0 || out.Xmax != 3 || out.Ymin != 0 || out.Ymax != 3 {
		t.Errorf("Expand(1) = %+v, want [0,3]x[0,3]", out)
	}
}

func TestGBoxStringRoundTrip(t *testing.T) {
	a := box2D(1.5, -2.5, 3.5, 4.5)
	s := a.ToString()
	back, err := GBoxFromString(s, flags2D())
	if err != nil {
		t.Fatal(err)
	}
	same, err := Same(a, back)
	if err != nil || !same {
		t.Errorf("round trip through %q produced %+v, want %+v", s, back, a)
	}
}

func TestGBoxEmptyStringRoundTrip(t *testing.T) {
	empty := NewEmptyGBox(flags2D())
	s := empty.ToString()
	if s != "GBOX(EMPTY)" {
		t.Fatalf("ToString() on an empty box = %q, want GBOX(EMPTY)", s)
	}
	back, err := GBoxFromString(s, flags2D())
	if err != nil || !back.IsEmpty {
		t.Errorf("GBoxFromString(%q) = %+v, %v; want an empty box", s, back, err)
	}
}

func TestGBoxSerializedSize(t *testing.T) {
	if n := SerializedSize(flags2D()); n != 4 {
		t.Errorf("SerializedSize(2D) = %d, want 4", n)
	}
	geodetic := NewFlags(false, false, false, true, false, false)
	if n := SerializedSize(geodetic); n != 6 {
		t.Errorf("SerializedSize(geodetic) = %d, want 6", n)
	}
}

func TestGBoxNextFloatDownUp(t *testing.T) {
	d := 0.1
	down := NextFloatDown(d)
	up := NextFloatUp(d)
	if float64(down) > d {
		t.Errorf("NextFloatDown(%v) = %v, must not exceed d", d, down)
	}
	if float64(up) < d {
		t.Errorf("NextFloatUp(%v) = %v, must not be less than d", d, up)
	}
}
