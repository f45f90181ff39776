package main

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/larkspur-gfx/meshbvh/bvh"
	"github.com/larkspur-gfx/meshbvh/types"
	"github.com/urfave/cli"
)

// BenchRays fires a batch of random rays at the mesh's bounding sphere and
// reports traversal throughput. Rays are distributed across a worker pool
// sized to GOMAXPROCS, since an *bvh.Accelerator is safe for concurrent
// queries once built.
func BenchRays(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	g, acc, err := loadAndBuild(ctx.Args().First())
	if err != nil {
		return err
	}

	center, radius := boundingSphere(g.Positions)

	numRays := ctx.Int("rays")
	seed := ctx.Int64("seed")

	workers := runtime.GOMAXPROCS(0)
	var hits, misses int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	raysPerWorker, extraRays := numRays/workers, numRays%workers
	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			localHits, localMisses := 0, 0
			count := raysPerWorker
			if w < extraRays {
				count++
			}
			for i := 0; i < count; i++ {
				origin, dir := randomRayAt(rng, center, radius)
				ray := bvh.NewRay(origin, dir, 0, 1e30)
				rec := bvh.HitRecord{Dist: ray.TMax}
				acc.Traverse(&ray, &rec)
				if rec.Hit {
					localHits++
				} else {
					localMisses++
				}
			}
			mu.Lock()
			hits += int64(localHits)
			misses += int64(localMisses)
			mu.Unlock()
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := hits + misses
	logger.Noticef(
		"traced %d rays across %d workers in %s (%.0f rays/sec), %d hits, %d misses",
		total, workers, elapsed, float64(total)/elapsed.Seconds(), hits, misses,
	)
	return nil
}

func boundingSphere(positions []types.Vec3) (center types.Vec3, radius float32) {
	box := types.EmptyAABB()
	for _, p := range positions {
		box.Min = types.MinVec3(box.Min, p)
		box.Max = types.MaxVec3(box.Max, p)
	}
	center = box.Min.Add(box.Max).Mul(0.5)
	radius = box.Extent().Len() * 0.5
	return center, radius
}

func randomRayAt(rng *rand.Rand, center types.Vec3, radius float32) (origin, dir types.Vec3) {
	r := radius * 3
	origin = types.Vec3{
		center[0] + (rng.Float32()*2-1)*r,
		center[1] + (rng.Float32()*2-1)*r,
		center[2] + (rng.Float32()*2-1)*r,
	}
	dir = center.Sub(origin).Normalize()
	return origin, dir
}
