package types

import "math"

// AABB is an axis-aligned bounding box. The zero value is not a valid empty
// box; use EmptyAABB to get the Merge identity.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns the identity element under Merge: min = +inf, max = -inf
// on every axis, so merging it with any real box yields that box unchanged.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// BoxFromPoints returns the tightest box enclosing the given points.
func BoxFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box.Min = MinVec3(box.Min, p)
		box.Max = MaxVec3(box.Max, p)
	}
	return box
}

// Merge grows the box in place to also enclose other.
func (b *AABB) Merge(other AABB) {
	b.Min = MinVec3(b.Min, other.Min)
	b.Max = MaxVec3(b.Max, other.Max)
}

// Translate returns a copy of the box shifted by delta.
func (b AABB) Translate(delta Vec3) AABB {
	return AABB{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Extent returns Max - Min componentwise.
func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether the box encloses other within eps, used by tests
// to check the "parent box encloses its children" invariant.
func (b AABB) Contains(other AABB, eps float32) bool {
	for k := 0; k < 3; k++ {
		if other.Min[k] < b.Min[k]-eps || other.Max[k] > b.Max[k]+eps {
			return false
		}
	}
	return true
}

// Intersect runs the slab test against a ray given by origin and component-
// wise reciprocal direction, returning true iff the ray hits the box within
// (0, length). length is typically the caller's current best hit distance,
// so the test doubles as a prune against the running closest hit.
func (b AABB) Intersect(origin, invDir Vec3, length float32) bool {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for k := 0; k < 3; k++ {
		near, far := b.Min[k], b.Max[k]
		if invDir[k] < 0 {
			near, far = far, near
		}
		tNear := (near - origin[k]) * invDir[k]
		tFar := (far - origin[k]) * invDir[k]
		if tNear > tmin {
			tmin = tNear
		}
		if tFar < tmax {
			tmax = tFar
		}
	}

	return tmin <= tmax && tmax > 0 && tmin < length
}
