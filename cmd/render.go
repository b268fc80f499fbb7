package cmd

import (
	"errors"

	"github.com/TUS-OSK/go-bvhtrace/bvh"
	"github.com/TUS-OSK/go-bvhtrace/camera"
	"github.com/TUS-OSK/go-bvhtrace/film"
	"github.com/TUS-OSK/go-bvhtrace/internal/config"
	"github.com/TUS-OSK/go-bvhtrace/internal/xlog"
	"github.com/TUS-OSK/go-bvhtrace/mesh"
	"github.com/TUS-OSK/go-bvhtrace/obj"
	"github.com/TUS-OSK/go-bvhtrace/render"
	"github.com/TUS-OSK/go-bvhtrace/types"
	"github.com/urfave/cli"
)

// RenderFrame loads an OBJ scene, builds a BVH over it, path-traces a
// single frame and writes the result to a PPM file.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sceneFile := ctx.Args().First()
	log := logger.WithFields(xlog.Fields{"scene": sceneFile})
	log.Notice("loading scene")

	m, err := obj.Load(sceneFile)
	if err != nil {
		return err
	}
	polygon := mesh.NewPolygon(len(m.Vertices)/3, len(m.Indices), m.Vertices, m.Indices, m.Normals, m.UVs)

	log = log.WithFields(xlog.Fields{"faces": polygon.NFaces()})
	log.Notice("building bvh")
	tree := bvh.Build(polygon)
	log.WithFields(xlog.Fields{
		"nodes":         tree.NumNodes(),
		"internalNodes": tree.NumInternalNodes(),
		"leafNodes":     tree.NumLeafNodes(),
	}).Notice("bvh built")

	mode := config.CameraMode(ctx)

	aabb := tree.RootAABB()
	center := aabb.Center()
	radius := aabb.PMax.Sub(aabb.PMin).Len()
	eye := center.Add(types.Vec3{0, 0, radius})
	cam := camera.New(eye, center, types.Vec3{0, 1, 0}, 0.9, float32(ctx.Int("width"))/float32(ctx.Int("height")), mode)

	fb := film.New(ctx.Int("width"), ctx.Int("height"))

	opts := config.RenderOptions(ctx)

	log.Notice("rendering frame")
	stats := render.Render(tree, cam, fb, opts)
	log.WithFields(xlog.Fields{
		"elapsed": stats.RenderTime,
		"workers": stats.Workers,
	}).Notice("rendered frame")

	out := ctx.String("out")
	if err := fb.WritePPM(out); err != nil {
		return err
	}
	log.WithFields(xlog.Fields{"out": out}).Notice("wrote frame")

	return nil
}
