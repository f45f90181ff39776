package bvh

import "github.com/larkspur-gfx/meshbvh/types"

// triangleEpsilon guards against a zero determinant, i.e. a ray parallel to
// the triangle's plane or a degenerate (zero-area) triangle.
const triangleEpsilon float32 = 1e-7

// intersectTriangle tests ray (origin o, direction d) against triangle
// (v0, v1, v2) using the Möller-Trumbore algorithm. It accepts a hit only
// if tmin <= t < tmax (strict upper bound) and t <= dist (non-strict
// running-best bound); both comparators are load-bearing, not accidental:
// the strict tmax keeps the interval half-open the way the ray's own
// [tmin, tmax) is defined, while the non-strict dist comparison lets a
// later leaf at the exact current best distance still register (needed so
// that repeated traversal of coincident triangles is deterministic).
func intersectTriangle(o, d, v0, v1, v2 types.Vec3, tmin, tmax, dist float32) (t, u, v float32, hit bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := d.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleEpsilon && a < triangleEpsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := o.Sub(v0)
	u = f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * d.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * edge2.Dot(q)
	if t < tmin || t >= tmax || t > dist {
		return 0, 0, 0, false
	}

	return t, u, v, true
}
