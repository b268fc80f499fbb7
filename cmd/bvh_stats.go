package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/TUS-OSK/go-bvhtrace/bvh"
	"github.com/TUS-OSK/go-bvhtrace/mesh"
	"github.com/TUS-OSK/go-bvhtrace/obj"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// BVHStats loads an OBJ scene, builds a BVH over it, and prints node
// counts plus the root bounding box as a formatted table.
func BVHStats(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	m, err := obj.Load(ctx.Args().First())
	if err != nil {
		return err
	}
	polygon := mesh.NewPolygon(len(m.Vertices)/3, len(m.Indices), m.Vertices, m.Indices, m.Normals, m.UVs)

	tree := bvh.Build(polygon)
	displayBVHStats(polygon, tree)

	return nil
}

func displayBVHStats(p *mesh.Polygon, tree *bvh.BVH) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})

	aabb := tree.RootAABB()
	table.Append([]string{"Faces", fmt.Sprintf("%d", p.NFaces())})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", tree.NumNodes())})
	table.Append([]string{"Internal nodes", fmt.Sprintf("%d", tree.NumInternalNodes())})
	table.Append([]string{"Leaf nodes", fmt.Sprintf("%d", tree.NumLeafNodes())})
	table.Append([]string{"Root AABB min", fmt.Sprintf("(%.3f, %.3f, %.3f)", aabb.PMin[0], aabb.PMin[1], aabb.PMin[2])})
	table.Append([]string{"Root AABB max", fmt.Sprintf("(%.3f, %.3f, %.3f)", aabb.PMax[0], aabb.PMax[1], aabb.PMax[2])})

	table.Render()
	logger.Noticef("bvh statistics\n%s", buf.String())
}
