// Package config translates CLI flags into the option structs the render
// and camera packages take, so cmd's command actions stay thin wiring and
// the flag-to-domain-value mapping lives in one place.
package config

import (
	"github.com/TUS-OSK/go-bvhtrace/camera"
	"github.com/TUS-OSK/go-bvhtrace/render"
	"github.com/urfave/cli"
)

// RenderOptions builds a render.Options from the render command's flags,
// starting from render.DefaultOptions() and overriding what the user set.
func RenderOptions(ctx *cli.Context) render.Options {
	opts := render.DefaultOptions()
	opts.SamplesPerPixel = ctx.Int("spp")
	opts.MaxBounces = ctx.Int("bounces")
	opts.RRStartBounce = ctx.Int("rr-bounces")
	return opts
}

// CameraMode translates the --camera-mode flag into a camera.Mode,
// defaulting to camera.ModeForward for an empty or unrecognized value.
func CameraMode(ctx *cli.Context) camera.Mode {
	if ctx.String("camera-mode") == "backward" {
		return camera.ModeBackward
	}
	return camera.ModeForward
}
