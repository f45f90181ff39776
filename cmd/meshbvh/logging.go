package main

import (
	"github.com/larkspur-gfx/meshbvh/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("meshbvh")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
