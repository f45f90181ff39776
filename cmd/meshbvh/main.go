package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "meshbvh"
	app.Usage = "build and query a linear BVH over a triangle mesh"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "load a mesh, build its accelerator and report tree statistics",
			ArgsUsage: "mesh.obj",
			Action:    BuildMesh,
		},
		{
			Name:      "trace",
			Usage:     "fire a single ray at a mesh and report the nearest hit",
			ArgsUsage: "mesh.obj",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "origin", Value: "0,0,0", Usage: "ray origin, as x,y,z"},
				cli.StringFlag{Name: "dir", Value: "0,0,1", Usage: "ray direction, as x,y,z"},
				cli.Float64Flag{Name: "tmin", Value: 0, Usage: "minimum ray distance"},
				cli.Float64Flag{Name: "tmax", Value: 1e30, Usage: "maximum ray distance"},
			},
			Action: TraceRay,
		},
		{
			Name:      "bench",
			Usage:     "fire a batch of random rays at a mesh and report throughput",
			ArgsUsage: "mesh.obj",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "rays", Value: 100000, Usage: "number of rays to fire"},
				cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed"},
			},
			Action: BenchRays,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%s", err.Error())
		os.Exit(1)
	}
}
