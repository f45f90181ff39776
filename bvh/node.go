package bvh

import "github.com/larkspur-gfx/meshbvh/types"

// unsetChild is the sentinel value for an as-yet-unwritten child slot.
const unsetChild = ^uint32(0)

// Node is one internal node of the LBVH. The low bit of L/R tags the kind of
// the referent (1 = leaf, 0 = internal); the upper 31 bits are its index.
// During the build every child slot starts as unsetChild and is written
// exactly once; a zero-value Node has L = R = 0 and a zero box, not that
// unset state.
type Node struct {
	Box  types.AABB
	L, R uint32
}

// encodeLeaf packs a sorted-leaf-table index as a leaf child reference.
func encodeLeaf(leafIndex uint32) uint32 {
	return (leafIndex << 1) | 1
}

// encodeInternal packs a Nodes-array index as an internal child reference.
func encodeInternal(nodeIndex uint32) uint32 {
	return nodeIndex << 1
}

// decodeChild splits a packed child reference into its index and leaf flag.
func decodeChild(child uint32) (index uint32, isLeaf bool) {
	return child >> 1, child&1 != 0
}
