package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/larkspur-gfx/meshbvh/bvh"
	"github.com/larkspur-gfx/meshbvh/types"
	"github.com/urfave/cli"
)

// parseVec3Flag parses a "x,y,z" flag value into a Vec3.
func parseVec3Flag(s string) (types.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return types.Vec3{}, fmt.Errorf("expected x,y,z; got %q", s)
	}

	var v types.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// TraceRay loads a mesh, builds its accelerator and fires a single ray
// described by the -origin/-dir/-tmin/-tmax flags.
func TraceRay(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	_, acc, err := loadAndBuild(ctx.Args().First())
	if err != nil {
		return err
	}

	origin, err := parseVec3Flag(ctx.String("origin"))
	if err != nil {
		return fmt.Errorf("-origin: %w", err)
	}
	dir, err := parseVec3Flag(ctx.String("dir"))
	if err != nil {
		return fmt.Errorf("-dir: %w", err)
	}

	ray := bvh.NewRay(origin, dir, float32(ctx.Float64("tmin")), float32(ctx.Float64("tmax")))
	rec := bvh.HitRecord{Dist: ray.TMax}
	acc.Traverse(&ray, &rec)

	if !rec.Hit {
		logger.Notice("miss")
		return nil
	}

	w := 1 - rec.U - rec.V
	pos := acc.InterpolatePosition(rec.FaceID, rec.U, rec.V, w)
	normal := acc.InterpolateNormal(rec.FaceID, rec.U, rec.V, w)
	logger.Noticef(
		"hit face %d at dist %.6f, u=%.4f v=%.4f, position=%v normal=%v",
		rec.FaceID, rec.Dist, rec.U, rec.V, pos, normal,
	)
	return nil
}
