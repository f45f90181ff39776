package bvh

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/larkspur-gfx/meshbvh/internal/log"
	"github.com/larkspur-gfx/meshbvh/mesh"
	"github.com/larkspur-gfx/meshbvh/types"
)

var logger = log.New("bvh")

// Accelerator answers nearest-hit ray queries against a static triangle
// mesh via a Linear BVH built once at construction time. It borrows the
// geometry arrays for its lifetime and owns its node array; both are
// immutable after Build returns, so an *Accelerator may be queried by any
// number of goroutines concurrently with no further coordination.
type Accelerator struct {
	geometry *mesh.Geometry

	nodes  []Node
	leaves []leaf

	// root is encoded exactly like a Node's child slot, so a single-leaf
	// mesh (N == 0) and the general case share the same traversal entry
	// point: decode it, and either test the referenced triangle directly
	// or push the referenced internal node.
	root uint32
}

// Build constructs an Accelerator over positions/normals/corners. It fails
// with ErrEmptyInput if there are no faces to build from.
func Build(positions, normals []types.Vec3, corners []mesh.Corner) (*Accelerator, error) {
	if len(positions) == 0 || len(normals) == 0 || len(corners) == 0 {
		return nil, ErrEmptyInput
	}

	g := &mesh.Geometry{Positions: positions, Normals: normals, Corners: corners}
	faceCount := g.FaceCount()
	if faceCount == 0 {
		return nil, ErrEmptyInput
	}

	start := time.Now()

	leaves, global := buildLeaves(g)
	nodes, root := buildRadixTree(g, leaves, global)

	logger.Debugf(
		"bvh build time: %d us, faces: %d, nodes: %d",
		time.Since(start).Microseconds(), faceCount, len(nodes),
	)

	return &Accelerator{geometry: g, nodes: nodes, leaves: leaves, root: root}, nil
}

// buildRadixTree runs the Apetrei/Karras bottom-up merge: one work item per
// triangle, run on the dispatch worker pool, walks up the implicit radix
// tree, using an atomic otherBounds rendezvous slot per internal node so
// that the second of the two workers converging on a parent - and only that
// one - continues upward with the parent's fully merged box. With T == 1
// there is no internal node to build; the root directly references the sole
// leaf. It expects T >= 1 (Build rejects T == 0 before calling it).
func buildRadixTree(g *mesh.Geometry, leaves []leaf, global types.AABB) ([]Node, uint32) {
	t := len(leaves)
	if t == 1 {
		return nil, encodeLeaf(0)
	}

	n := t - 1
	buildNodes := make([]atomicAABB, n)
	leftSlot := make([]uint32, n)
	rightSlot := make([]uint32, n)
	for i := range buildNodes {
		buildNodes[i] = newAtomicAABB()
		leftSlot[i] = unsetChild
		rightSlot[i] = unsetChild
	}
	otherBounds := make([]atomic.Uint32, n)
	for i := range otherBounds {
		otherBounds[i].Store(unsetChild)
	}

	var root uint32
	var rootMu sync.Mutex

	delta := func(k int) uint32 {
		return leaves[k+1].key ^ leaves[k].key
	}

	worker := func(i int) {
		current := uint32(i)
		left := uint32(i)
		right := uint32(i)
		isLeaf := true

		v0, v1, v2 := g.FacePositions(int(leaves[i].id))
		box := types.BoxFromPoints(v0, v1, v2).Translate(global.Min.Mul(-1))

		encodeCurrent := func() uint32 {
			if isLeaf {
				return encodeLeaf(current)
			}
			return encodeInternal(current)
		}

		for {
			if left == 0 && right == uint32(n) {
				rootMu.Lock()
				root = encodeCurrent()
				rootMu.Unlock()
				return
			}

			index := encodeCurrent()

			preferRight := left == 0 || (right != uint32(n) && delta(int(right)) < delta(int(left)-1))

			var parent uint32
			var siblingVal uint32
			if preferRight {
				parent = right
				leftSlot[parent] = index
				siblingVal = left
			} else {
				parent = left - 1
				rightSlot[parent] = index
				siblingVal = right
			}

			buildNodes[parent].merge(box)

			prev := otherBounds[parent].Swap(siblingVal)
			if prev == unsetChild {
				// First arrival: the sibling range isn't ready yet. The
				// worker that completes it will pick up from here.
				return
			}

			if preferRight {
				right = prev
			} else {
				left = prev
			}
			current = parent
			box = buildNodes[current].load()
			isLeaf = false
		}
	}

	dispatch(n+1, worker)

	nodes := make([]Node, n)
	translateBack := func(i int) {
		nodes[i] = Node{
			Box: buildNodes[i].load().Translate(global.Min),
			L:   leftSlot[i],
			R:   rightSlot[i],
		}
	}
	dispatch(n, translateBack)

	return nodes, root
}

// dispatch runs fn(0), fn(1), ..., fn(count-1) across a worker pool sized to
// the available CPUs, joined before returning.
func dispatch(count int, fn func(i int)) {
	if count <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > count {
		workers = count
	}
	if workers < 1 {
		workers = 1
	}

	work := make(chan int, count)
	for i := 0; i < count; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
