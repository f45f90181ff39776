package bvh

import "github.com/larkspur-gfx/meshbvh/types"

// Ray is a parametric ray origin + p*dir, tested against the accelerator
// within the half-open interval [TMin, TMax).
type Ray struct {
	Origin, Dir types.Vec3
	InvDir      types.Vec3
	TMin, TMax  float32
}

// NewRay builds a Ray, deriving the componentwise reciprocal direction.
// Zero components of dir yield a signed infinity in InvDir (IEEE-754
// division semantics), which the slab test's near/far-face selection
// relies on to handle rays parallel to a box face.
func NewRay(origin, dir types.Vec3, tmin, tmax float32) Ray {
	return Ray{
		Origin: origin,
		Dir:    dir,
		InvDir: types.Vec3{1 / dir[0], 1 / dir[1], 1 / dir[2]},
		TMin:   tmin,
		TMax:   tmax,
	}
}
