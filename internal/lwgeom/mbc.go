package lwgeom

import "math"

// Circle is a minimum bounding circle result, spec.md §4.C12.
type Circle struct {
	Center Coord
	Radius float64
}

// mbcEpsilon is the containment tolerance used throughout the solver, to
// absorb floating point error at the support-point boundary.
const mbcEpsilon = 1e-12

// Contains reports whether p lies within c, widened by mbcEpsilon.
func (c Circle) Contains(p Coord) bool {
	return dist2D(c.Center, p) <= c.Radius+mbcEpsilon
}

func dist2D(a, b Coord) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// MinBoundingCircle computes the minimum enclosing circle of points via
// Welzl's move-to-front algorithm (original_source/liblwgeom/
// lwboundingcircle.c), processed in the caller's input order rather than a
// randomized one (lwboundingcircle.c builds its working array straight from
// the input ptarray and never shuffles it). Expected running time is linear
// in len(points) given the move-to-front heuristic; returns an error if
// points is empty.
func MinBoundingCircle(points []Coord) (Circle, error) {
	if len(points) == 0 {
		return Circle{}, &ErrDegenerate{Reason: "minimum bounding circle of an empty point set"}
	}
	pts := make([]Coord, len(points))
	copy(pts, points)
	return mbcWelzl(pts), nil
}

// mbcWelzl is the outer support-size-0/1 loop: it grows a circle over P,
// and whenever a point falls outside the current circle, that point must be
// on the boundary of the true MBC, so it recurses with that point fixed.
func mbcWelzl(P []Coord) Circle {
	n := len(P)
	c := Circle{Radius: -1}
	for i := 1; i <= n; i++ {
		p := P[i-1]
		if c.Radius < 0 || !c.Contains(p) {
			c = mbcWithPoint(P[:i-1], p)
			moveToFront(P[:i], i-1)
		}
	}
	if c.Radius < 0 {
		return calcMBCFromSupport(nil)
	}
	return c
}

// mbcWithPoint finds the MEC of P union {q} given q must lie on the
// boundary (support size 1 fixed).
func mbcWithPoint(P []Coord, q Coord) Circle {
	c := Circle{Center: q, Radius: 0}
	for j := 1; j <= len(P); j++ {
		p := P[j-1]
		if !c.Contains(p) {
			if c.Radius == 0 {
				c = calcMBCFromSupport([]Coord{q, p})
			} else {
				c = mbcWithTwoPoints(P[:j-1], q, p)
			}
			moveToFront(P[:j], j-1)
		}
	}
	return c
}

// mbcWithTwoPoints finds the MEC of P union {q1,q2} given both must lie on
// the boundary (support size 2 fixed). Each point of P found outside the
// current circle becomes the third support point and the circle is rebuilt
// from {q1,q2,p} directly (support size 3, the maximum for a circle, so no
// further recursion); the scan then goes on over the rest of P.
func mbcWithTwoPoints(P []Coord, q1, q2 Coord) Circle {
	c := calcMBCFromSupport([]Coord{q1, q2})
	for _, p := range P {
		if !c.Contains(p) {
			c = calcMBCFromSupport([]Coord{q1, q2, p})
		}
	}
	return c
}

// moveToFront swaps P[idx] to the front of P[0:len(P)] preserving the
// relative order of the rest, so the next outer-loop pass over this prefix
// re-examines the just-discovered boundary point first — the heuristic that
// gives Welzl's algorithm its expected-linear running time.
func moveToFront(P []Coord, idx int) {
	p := P[idx]
	copy(P[1:idx+1], P[0:idx])
	P[0] = p
}

// calcMBCFromSupport computes the trivial MEC for a support set of size
// 0, 1, 2, or 3 (spec.md §4.C12's calc_mbc_from_support).
func calcMBCFromSupport(R []Coord) Circle {
	switch len(R) {
	case 0:
		return Circle{Radius: 0}
	case 1:
		return Circle{Center: R[0], Radius: 0}
	case 2:
		return circleFromTwo(R[0], R[1])
	case 3:
		return circleFromThree(R[0], R[1], R[2])
	default:
		return Circle{}
	}
}

func circleFromTwo(a, b Coord) Circle {
	center := Coord{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return Circle{Center: center, Radius: dist2D(center, a)}
}

// circleFromThree returns the smallest circle through or enclosing three
// points: first checks whether any pair's diameter circle already encloses
// the third (the obtuse/right-triangle case), else falls back to the
// circumcircle.
func circleFromThree(a, b, c Coord) Circle {
	type pair struct{ p1, p2, third Coord }
	candidates := []pair{{a, b, c}, {a, c, b}, {b, c, a}}
	var best *Circle
	for _, cand := range candidates {
		circ := circleFromTwo(cand.p1, cand.p2)
		if circ.Contains(cand.third) {
			if best == nil || circ.Radius < best.Radius {
				cp := circ
				best = &cp
			}
		}
	}
	if best != nil {
		return *best
	}
	return circumcircle(a, b, c)
}

func circumcircle(a, b, c Coord) Circle {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return circleFromTwo(a, b)
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	center := Coord{X: ux, Y: uy}
	return Circle{Center: center, Radius: dist2D(center, a)}
}
