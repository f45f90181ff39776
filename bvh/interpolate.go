package bvh

import "github.com/larkspur-gfx/meshbvh/types"

// InterpolatePosition returns the linear combination of face faceID's three
// vertex positions with weights (w, u, v) in corner order 0, 1, 2.
func (a *Accelerator) InterpolatePosition(faceID int32, u, v, w float32) types.Vec3 {
	v0, v1, v2 := a.geometry.FacePositions(int(faceID))
	return v0.Mul(w).Add(v1.Mul(u)).Add(v2.Mul(v))
}

// InterpolateNormal returns the linear combination of face faceID's three
// vertex normals with weights (w, u, v) in corner order 0, 1, 2.
func (a *Accelerator) InterpolateNormal(faceID int32, u, v, w float32) types.Vec3 {
	n0, n1, n2 := a.geometry.FaceNormals(int(faceID))
	return n0.Mul(w).Add(n1.Mul(u)).Add(n2.Mul(v))
}
