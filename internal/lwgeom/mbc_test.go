package lwgeom

import "testing"

func TestMinBoundingCircleSquare(t *testing.T) {
	pts := []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	c, err := MinBoundingCircle(pts)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		if !c.Contains(p) {
			t.Errorf("MBC %+v does not contain corner %+v", c, p)
		}
	}
	wantCenter := Coord{X: 5, Y: 5}
	if dist2D(c.Center, wantCenter) > 1e-6 {
		t.Errorf("center = %+v, want ~%+v", c.Center, wantCenter)
	}
}

func TestMinBoundingCircleSinglePoint(t *testing.T) {
	c, err := MinBoundingCircle([]Coord{{X: 3, Y: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if c.Radius != 0 || c.Center.X != 3 || c.Center.Y != 4 {
		t.Errorf("single-point MBC = %+v, want radius 0 at the point", c)
	}
}

func TestMinBoundingCircleTwoPoints(t *testing.T) {
	c, err := MinBoundingCircle([]Coord{{X: 0, Y: 0}, {X: 4, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if dist2D(c.Center, Coord{X: 2, Y: 0}) > 1e-9 {
		t.Errorf("two-point MBC center = %+v, want (2,0)", c.Center)
	}
	if c.Radius != 2 {
		t.Errorf("two-point MBC radius = %v, want 2", c.Radius)
	}
}

func TestMinBoundingCircleCollinearPoints(t *testing.T) {
	pts := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 5, Y: 0}}
	c, err := MinBoundingCircle(pts)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		if !c.Contains(p) {
			t.Errorf("MBC %+v does not contain collinear point %+v", c, p)
		}
	}
}

func TestMinBoundingCircleEmpty(t *testing.T) {
	_, err := MinBoundingCircle(nil)
	if err == nil {
		t.Error("expected an error for an empty point set")
	}
}

func TestMinBoundingCircleManyRandomishPoints(t *testing.T) {
	pts := []Coord{
		{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1},
		{X: 0.5, Y: 0.5}, {X: -0.3, Y: 0.2}, {X: 0.1, Y: -0.9}, {X: 0.9, Y: -0.2},
	}
	c, err := MinBoundingCircle(pts)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		if !c.Contains(p) {
			t.Errorf("MBC fails to contain point %+v", p)
		}
	}
}

func TestCircumcircle(t *testing.T) {
	c := circumcircle(Coord{X: 1, Y: 0}, Coord{X: 0, Y: 1}, Coord{X: -1, Y: 0})
	if dist2D(c.Center, Coord{X: 0, Y: 0}) > 1e-9 {
		t.Errorf("circumcircle center = %+v, want origin", c.Center)
	}
	if diff := c.Radius - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("circumcircle radius = %v, want 1", c.Radius)
	}
}
