package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/larkspur-gfx/meshbvh/bvh"
	"github.com/larkspur-gfx/meshbvh/mesh"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// BuildMesh loads a mesh, builds its accelerator and prints summary stats.
func BuildMesh(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	g, acc, err := loadAndBuild(ctx.Args().First())
	if err != nil {
		return err
	}

	displayBuildStats(g, acc)
	return nil
}

func loadAndBuild(path string) (*mesh.Geometry, *bvh.Accelerator, error) {
	start := time.Now()
	g, err := mesh.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("loaded %s in %s", path, time.Since(start))

	acc, err := bvh.Build(g.Positions, g.Normals, g.Corners)
	if err != nil {
		return nil, nil, err
	}

	return g, acc, nil
}

func displayBuildStats(g *mesh.Geometry, acc *bvh.Accelerator) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Vertices", fmt.Sprintf("%d", len(g.Positions))})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", acc.FaceCount())})
	table.Append([]string{"Internal nodes", fmt.Sprintf("%d", acc.NodeCount())})
	table.Append([]string{"Tree depth", fmt.Sprintf("%d", acc.Depth())})
	table.Render()

	logger.Noticef("mesh statistics\n%s", buf.String())
}
