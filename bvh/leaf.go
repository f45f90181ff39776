package bvh

import (
	"sort"

	"github.com/larkspur-gfx/meshbvh/mesh"
	"github.com/larkspur-gfx/meshbvh/types"
)

// leaf is one entry of the sorted leaf table: the original triangle index
// paired with its Morton key.
type leaf struct {
	id  uint32
	key uint32
}

// buildLeaves computes the global AABB of the mesh and the Morton-sorted
// leaf table in one pass: one entry per triangle, ordered by key ascending.
// Ties are broken arbitrarily; sort.Slice is not required to be stable and
// the builder tolerates shared keys (a run of equal keys becomes a
// degenerate chain of nodes).
func buildLeaves(g *mesh.Geometry) (leaves []leaf, global types.AABB) {
	faceCount := g.FaceCount()

	global = types.EmptyAABB()
	for _, p := range g.Positions {
		global.Min = types.MinVec3(global.Min, p)
		global.Max = types.MaxVec3(global.Max, p)
	}

	// Degenerate or zero-extent axes would divide by zero when normalizing
	// centroids into the unit cube; substitute an inverse extent of 0 so
	// those axes collapse to 0 instead of producing NaN keys.
	extent := global.Extent()
	invExtent := types.Vec3{}
	for k := 0; k < 3; k++ {
		if extent[k] > 0 {
			invExtent[k] = 1.0 / extent[k]
		}
	}

	leaves = make([]leaf, faceCount)
	for f := 0; f < faceCount; f++ {
		v0, v1, v2 := g.FacePositions(f)
		centroid := v0.Add(v1).Add(v2).Mul(1.0 / 3.0)
		u := centroid.Sub(global.Min).MulVec(invExtent)
		leaves[f] = leaf{id: uint32(f), key: morton3d(u[0], u[1], u[2])}
	}

	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].key < leaves[j].key
	})

	return leaves, global
}
