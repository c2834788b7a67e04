package lwgeom

import "math"

// CalculateGBox computes the Cartesian bounding box of g into a GBOX whose
// Flags must already be set by the caller (spec.md §4.C6/§4.C8). Polygon
// bboxes consider only the outer ring (invariant: holes lie inside it).
// Collection bboxes are the union of child bboxes and fail if the
// collection is empty.
func CalculateGBox(g *Geometry, out *GBOX) error {
	out.IsEmpty = true
	switch g.Type {
	case TypeCircularString:
		return calcCircularStringBox(g.Points, out)
	default:
		switch g.Type.shape() {
		case shapeLeaf:
			calcPointArrayBox(g.Points, out)
			return nil
		case shapePolygon:
			if len(g.Rings) == 0 {
				return nil
			}
			calcPointArrayBox(g.Rings[0], out)
			return nil
		case shapeCollection:
			if len(g.Children) == 0 {
				return &ErrInvalidType{Reason: "cannot compute bbox of empty collection"}
			}
			for _, c := range g.Children {
				var childBox GBOX
				childBox.Flags = out.Flags
				if err := CalculateGBox(c, &childBox); err != nil {
					return err
				}
				if !childBox.IsEmpty {
					if err := Merge(childBox, out); err != nil {
						return err
					}
				}
			}
			return nil
		}
	}
	return nil
}

func calcPointArrayBox(pa *PointArray, out *GBOX) {
	np := pa.NPoints()
	for i := 0; i < np; i++ {
		c, _ := pa.GetPoint4D(i)
		wasEmpty := out.IsEmpty
		MergePoint3D(Coord{X: c.X, Y: c.Y, Z: c.Z}, out)
		if out.Flags.HasM() {
			if wasEmpty {
				out.Mmin, out.Mmax = c.M, c.M
			} else {
				out.Mmin = math.Min(out.Mmin, c.M)
				out.Mmax = math.Max(out.Mmax, c.M)
			}
		}
	}
	if np > 0 {
		out.IsEmpty = false
	}
}

// calcCircularStringBox computes the bbox of a CircularString by unioning
// the bbox of each (p1,p2,p3) arc triple, each via arcBBox (spec.md §4.C8).
func calcCircularStringBox(pa *PointArray, out *GBOX) error {
	np := pa.NPoints()
	if np == 0 {
		return nil
	}
	if np < 3 || np%2 == 0 {
		return &ErrInvalidType{Reason: "CircularString must have 0 or an odd number >= 3 of points"}
	}
	for i := 0; i+2 < np; i += 2 {
		p1, _ := pa.GetPoint2D(i)
		p2, _ := pa.GetPoint2D(i + 1)
		p3, _ := pa.GetPoint2D(i + 2)
		arcBox := arcBBox(p1, p2, p3)
		if err := Merge(arcBox, out); err != nil {
			return err
		}
	}
	return nil
}

const collinearTolerance = 1e-10

// arcBBox implements spec.md §4.C8's circular-arc bbox algorithm for a
// single arc p1-p2-p3.
func arcBBox(p1, p2, p3 Coord) GBOX {
	flags := NewFlags(false, false, true, false, false, false)

	// Step 1: p1==p3 (full circle) gives the box of the circle whose
	// diameter is p1-p2; otherwise find center/radius, or fall back to the
	// segment bbox when the three points are collinear (straight "arc").
	if p1.X == p3.X && p1.Y == p3.Y {
		cx, cy := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
		r := math.Hypot(p1.X-cx, p1.Y-cy)
		box := GBOX{Flags: flags}
		MergePoint3D(Coord{X: cx - r, Y: cy - r}, &box)
		MergePoint3D(Coord{X: cx + r, Y: cy + r}, &box)
		return box
	}

	det := (p2.X-p1.X)*(p3.Y-p1.Y) - (p3.X-p1.X)*(p2.Y-p1.Y)
	if math.Abs(det) < collinearTolerance {
		box := GBOX{Flags: flags}
		MergePoint3D(p1, &box)
		MergePoint3D(p2, &box)
		MergePoint3D(p3, &box)
		return box
	}

	cx, cy := arcCenter(p1, p2, p3)
	r := math.Hypot(p1.X-cx, p1.Y-cy)

	a1 := math.Atan2(p1.Y-cy, p1.X-cx)
	a2 := math.Atan2(p2.Y-cy, p2.X-cx)
	a3 := math.Atan2(p3.Y-cy, p3.X-cx)

	// Step 3: rotate so a1=0, derive the signed sweep interval [0, sweep].
	r2 := normalizeAngle(a2 - a1)
	r3 := normalizeAngle(a3 - a1)
	sweep := r3
	if r2 > r3 {
		// p2 is on the "major" side; a2 is not between 0 and r3 going
		// counter-clockwise, so the true sweep goes the other way around.
		sweep = r3 - 2*math.Pi
	}

	box := GBOX{Flags: flags}
	MergePoint3D(p1, &box)
	MergePoint3D(p3, &box)

	cardinals := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}
	for _, theta := range cardinals {
		rel := normalizeAngle(theta - a1)
		if angleInSweep(rel, sweep) {
			x := cx + r*math.Cos(theta)
			y := cy + r*math.Sin(theta)
			MergePoint3D(Coord{X: x, Y: y}, &box)
		}
	}
	return box
}

// arcCenter solves the perpendicular-bisector intersection of p1-p2 and
// p2-p3 for the circle's center.
func arcCenter(p1, p2, p3 Coord) (cx, cy float64) {
	ax, ay := p2.X-p1.X, p2.Y-p1.Y
	bx, by := p3.X-p2.X, p3.Y-p2.Y

	// Midpoints of each chord.
	m1x, m1y := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
	m2x, m2y := (p2.X+p3.X)/2, (p2.Y+p3.Y)/2

	// Perpendicular directions.
	d1x, d1y := -ay, ax
	d2x, d2y := -by, bx

	// Solve m1 + t*d1 = m2 + s*d2 for t.
	denom := d1x*d2y - d1y*d2x
	t := ((m2x-m1x)*d2y - (m2y-m1y)*d2x) / denom
	return m1x + t*d1x, m1y + t*d1y
}

// normalizeAngle wraps theta into [0, 2*pi).
func normalizeAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

// angleInSweep reports whether rel (already normalized into [0, 2*pi)) lies
// within the signed sweep [0, sweep] (sweep may be negative for clockwise
// arcs, in which case the interval is [sweep, 0]).
func angleInSweep(rel, sweep float64) bool {
	if sweep >= 0 {
		return rel <= sweep || rel == 0
	}
	// negative sweep: compare using the negative-going representation.
	relNeg := rel
	if relNeg > 0 {
		relNeg -= 2 * math.Pi
	}
	return relNeg >= sweep
}
