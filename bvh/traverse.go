package bvh

// maxStackDepth bounds the iterative traversal stack. 64 comfortably
// exceeds any reasonable Morton-tree depth (<= 30 plus skew from Morton-key
// ties), so reaching it indicates a malformed tree rather than a valid deep
// one; pushes beyond this are dropped rather than growing the stack.
const maxStackDepth = 64

// Traverse finds the nearest triangle hit by ray within [ray.TMin, ray.TMax)
// and no farther than rec.Dist (a hit at exactly rec.Dist is accepted).
// The caller initializes rec.Dist to ray.TMax; on return rec.Hit reports
// whether any triangle was struck, with the remaining fields valid iff Hit
// is true. A nil or zero-value Accelerator never reports a hit (Build
// returns nil for T == 0 triangles).
func (a *Accelerator) Traverse(ray *Ray, rec *HitRecord) {
	rec.Hit = false

	if a == nil || len(a.leaves) == 0 {
		return
	}

	idx, isLeaf := decodeChild(a.root)
	if isLeaf {
		a.testLeaf(idx, ray, rec)
		return
	}

	var stack [maxStackDepth]uint32
	sp := 0
	stack[sp] = idx
	sp++

	for sp > 0 {
		sp--
		nodeIdx := stack[sp]
		node := &a.nodes[nodeIdx]

		if !node.Box.Intersect(ray.Origin, ray.InvDir, rec.Dist) {
			continue
		}

		for _, child := range [2]uint32{node.L, node.R} {
			cIdx, cIsLeaf := decodeChild(child)
			if cIsLeaf {
				a.testLeaf(cIdx, ray, rec)
				continue
			}
			if sp < maxStackDepth {
				stack[sp] = cIdx
				sp++
			}
		}
	}
}

// testLeaf runs the Möller-Trumbore test against the triangle referenced by
// leafIdx (an index into the sorted leaf table) and updates rec if it is the
// new closest hit.
func (a *Accelerator) testLeaf(leafIdx uint32, ray *Ray, rec *HitRecord) {
	faceID := int32(a.leaves[leafIdx].id)
	v0, v1, v2 := a.geometry.FacePositions(int(faceID))

	t, u, v, hit := intersectTriangle(ray.Origin, ray.Dir, v0, v1, v2, ray.TMin, ray.TMax, rec.Dist)
	if !hit {
		return
	}

	rec.Hit = true
	rec.Dist = t
	rec.U = u
	rec.V = v
	rec.FaceID = faceID
}
