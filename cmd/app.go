package cmd

import "github.com/urfave/cli"

// App builds the bvhtrace CLI application: its global flags, version, and
// command table.
func App() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvhtrace"
	app.Usage = "build a BVH over a static mesh and trace rays through it"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "also write logs to this file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a scene by path-tracing through its BVH",
			ArgsUsage: "scene.obj",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 4,
					Usage: "maximum path bounces",
				},
				cli.IntFlag{
					Name:  "rr-bounces",
					Value: 2,
					Usage: "bounce count at which Russian roulette termination kicks in",
				},
				cli.StringFlag{
					Name:  "camera-mode",
					Value: "forward",
					Usage: "camera ray sampling mode: forward or backward",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.ppm",
					Usage: "output PPM filename",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:      "bvh-stats",
			Usage:     "build a BVH over a mesh and print node/AABB statistics",
			ArgsUsage: "scene.obj",
			Action:    BVHStats,
		},
	}

	return app
}
