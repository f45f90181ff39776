// Package mesh supplies the accelerator's Geometry View: flat position and
// normal arrays plus the per-corner index stream, and a loader that builds
// one from a Wavefront .obj file.
package mesh

import "github.com/larkspur-gfx/meshbvh/types"

// Corner addresses one corner of a triangle: an index into the position
// array and an index into the normal array. Triangle f owns corners
// 3f, 3f+1, 3f+2.
type Corner struct {
	P, N uint32
}

// Geometry is the immutable, externally owned triplet of arrays the
// accelerator borrows for its lifetime: positions, normals, and the
// index stream encoding per-corner (position, normal) pairs.
type Geometry struct {
	Positions []types.Vec3
	Normals   []types.Vec3
	Corners   []Corner
}

// FaceCount returns the number of triangles described by the index stream.
func (g *Geometry) FaceCount() int {
	return len(g.Corners) / 3
}

// FacePositions returns the three vertex positions of face f.
func (g *Geometry) FacePositions(f int) (v0, v1, v2 types.Vec3) {
	c := g.Corners[3*f : 3*f+3]
	return g.Positions[c[0].P], g.Positions[c[1].P], g.Positions[c[2].P]
}

// FaceNormals returns the three vertex normals of face f.
func (g *Geometry) FaceNormals(f int) (n0, n1, n2 types.Vec3) {
	c := g.Corners[3*f : 3*f+3]
	return g.Normals[c[0].N], g.Normals[c[1].N], g.Normals[c[2].N]
}
