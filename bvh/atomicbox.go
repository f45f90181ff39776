package bvh

import (
	"math"
	"sync/atomic"

	"github.com/larkspur-gfx/meshbvh/types"
)

// atomicF32 is a lock-free float32 bucket supporting concurrent min/max
// accumulation, the same compare-and-swap-loop-over-bits trick cogentcore's
// fatomic package uses for AddFloat32.
type atomicF32 struct {
	bits atomic.Uint32
}

func newAtomicF32(v float32) *atomicF32 {
	a := &atomicF32{}
	a.bits.Store(math.Float32bits(v))
	return a
}

func (a *atomicF32) load() float32 {
	return math.Float32frombits(a.bits.Load())
}

func (a *atomicF32) storeMin(v float32) {
	for {
		old := a.bits.Load()
		if v >= math.Float32frombits(old) {
			return
		}
		if a.bits.CompareAndSwap(old, math.Float32bits(v)) {
			return
		}
	}
}

func (a *atomicF32) storeMax(v float32) {
	for {
		old := a.bits.Load()
		if v <= math.Float32frombits(old) {
			return
		}
		if a.bits.CompareAndSwap(old, math.Float32bits(v)) {
			return
		}
	}
}

// atomicAABB is the build-time representation of a node's box: six
// independent lock-free floats so that two workers converging on the same
// parent can both merge into it without a lock, regardless of which of the
// two actually runs first; min/max are commutative and idempotent so the
// result is correct under any interleaving.
type atomicAABB struct {
	minX, minY, minZ *atomicF32
	maxX, maxY, maxZ *atomicF32
}

func newAtomicAABB() atomicAABB {
	return atomicAABB{
		minX: newAtomicF32(math.MaxFloat32),
		minY: newAtomicF32(math.MaxFloat32),
		minZ: newAtomicF32(math.MaxFloat32),
		maxX: newAtomicF32(-math.MaxFloat32),
		maxY: newAtomicF32(-math.MaxFloat32),
		maxZ: newAtomicF32(-math.MaxFloat32),
	}
}

func (b *atomicAABB) merge(box types.AABB) {
	b.minX.storeMin(box.Min[0])
	b.minY.storeMin(box.Min[1])
	b.minZ.storeMin(box.Min[2])
	b.maxX.storeMax(box.Max[0])
	b.maxY.storeMax(box.Max[1])
	b.maxZ.storeMax(box.Max[2])
}

func (b *atomicAABB) load() types.AABB {
	return types.AABB{
		Min: types.Vec3{b.minX.load(), b.minY.load(), b.minZ.load()},
		Max: types.Vec3{b.maxX.load(), b.maxY.load(), b.maxZ.load()},
	}
}
