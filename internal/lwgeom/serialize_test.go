package lwgeom

import "testing"

func TestSerializeDeserializePoint(t *testing.T) {
	g := ConstructEmpty(TypePoint, 4326, false, false)
	_ = g.AddPoint(Coord{X: 1.5, Y: -2.5}, true)

	buf, err := Serialize(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.SRID != 4326 || got.Type != TypePoint {
		t.Fatalf("round trip changed SRID/Type: %+v", got)
	}
	c, err := got.Points.GetPoint2D(0)
	if err != nil || c.X != 1.5 || c.Y != -2.5 {
		t.Errorf("round trip point = %+v, %v; want {1.5,-2.5}", c, err)
	}
}

func TestSerializeDeserializeWithZM(t *testing.T) {
	g := ConstructEmpty(TypeLineString, 0, true, true)
	_ = g.AddPoint(Coord{X: 0, Y: 0, Z: 1, M: 2}, true)
	_ = g.AddPoint(Coord{X: 1, Y: 1, Z: 3, M: 4}, true)

	buf, err := Serialize(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Flags.HasZ() || !got.Flags.HasM() {
		t.Fatalf("round trip lost Z/M flags: %08b", got.Flags)
	}
	c, err := got.Points.GetPoint4D(1)
	if err != nil || c.Z != 3 || c.M != 4 {
		t.Errorf("round trip ZM point = %+v, %v; want Z=3,M=4", c, err)
	}
}

func TestSerializeDeserializeWithBBox(t *testing.T) {
	g := ConstructEmpty(TypeLineString, 0, false, false)
	g.Flags = g.Flags.SetBBox(true)
	_ = g.AddPoint(Coord{X: 0, Y: 0}, true)
	_ = g.AddPoint(Coord{X: 5, Y: 5}, true)
	box := NewEmptyGBox(g.Flags)
	if err := CalculateGBox(g, &box); err != nil {
		t.Fatal(err)
	}
	g.BBox = &box

	buf, err := Serialize(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.BBox == nil {
		t.Fatal("expected the decoded geometry to carry a bbox")
	}
	if got.BBox.Xmax != 5 || got.BBox.Ymax != 5 {
		t.Errorf("decoded bbox = %+v, want Xmax=Ymax=5", got.BBox)
	}
}

func TestSerializeDeserializePolygon(t *testing.T) {
	g := ConstructEmpty(TypePolygon, 0, false, false)
	ring := ConstructEmpty(false, false, 0)
	for _, c := range []Coord{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}} {
		ring.AppendPoint(c, true)
	}
	_ = g.AddRing(ring)

	buf, err := Serialize(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Rings) != 1 || got.Rings[0].NPoints() != 5 {
		t.Fatalf("round trip polygon = %+v, want 1 ring of 5 points", got.Rings)
	}
}

func TestSerializeDeserializeCollection(t *testing.T) {
	coll := ConstructEmpty(TypeMultiPoint, 0, false, false)
	p1 := ConstructEmpty(TypePoint, 0, false, false)
	_ = p1.AddPoint(Coord{X: 1, Y: 1}, true)
	p2 := ConstructEmpty(TypePoint, 0, false, false)
	_ = p2.AddPoint(Coord{X: 2, Y: 2}, true)
	_ = coll.AddGeom(p1)
	_ = coll.AddGeom(p2)

	buf, err := Serialize(coll)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Children) != 2 {
		t.Fatalf("round trip collection has %d children, want 2", len(got.Children))
	}
	c, _ := got.Children[1].Points.GetPoint2D(0)
	if c.X != 2 || c.Y != 2 {
		t.Errorf("second child = %+v, want {2,2}", c)
	}
}

func TestDeserializeRejectsShortBuffer(t *testing.T) {
	if _, err := Deserialize([]byte{1, 2, 3}); err == nil {
		t.Error("expected an error decoding a too-short buffer")
	}
}

func TestDeserializeRejectsTruncatedPayload(t *testing.T) {
	g := ConstructEmpty(TypeLineString, 0, false, false)
	_ = g.AddPoint(Coord{X: 0, Y: 0}, true)
	_ = g.AddPoint(Coord{X: 1, Y: 1}, true)
	buf, err := Serialize(g)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Deserialize(buf[:len(buf)-4]); err == nil {
		t.Error("expected an error decoding a truncated payload")
	}
}
