package bvh

import (
	"github.com/TUS-OSK/go-bvhtrace/geom"
	"github.com/TUS-OSK/go-bvhtrace/mesh"
)

// leafCutoff is the maximum primitive count a node may hold before the
// builder must attempt a split.
const leafCutoff = 4

// BVH is the packed-array closest-hit accelerator: primitives are
// physically reordered by the builder and leaves reference a half-open
// range directly into that permuted slice. It has no pointer graph, is
// trivially shareable read-only across goroutines once built, and never
// mutates after Build returns.
type BVH struct {
	primitives []geom.Triangle
	nodes      []Node
	stats      Stats
}

// Build constructs a BVH over every face of p. The mesh view must outlive
// the returned BVH: traversal reads vertex data back through it.
func Build(p *mesh.Polygon) *BVH {
	n := p.NFaces()
	primitives := make([]geom.Triangle, n)
	for f := 0; f < n; f++ {
		primitives[f] = geom.NewTriangle(p, uint32(f))
	}

	b := &BVH{primitives: primitives}
	if n > 0 {
		b.buildNode(0, n)
	}
	b.stats.NNodes = b.stats.NInternalNodes + b.stats.NLeafNodes
	return b
}

// buildNode recursively partitions primitives[primStart:primEnd], appends
// the resulting node (and its subtree) to b.nodes, and returns the index
// it was stored at.
func (b *BVH) buildNode(primStart, primEnd int) uint32 {
	bbox := geom.EmptyAABB()
	for i := primStart; i < primEnd; i++ {
		bbox = geom.Merge(bbox, b.primitives[i].CalcAABB())
	}

	nPrims := primEnd - primStart
	if nPrims <= leafCutoff {
		return b.addLeaf(bbox, primStart, nPrims)
	}

	splitAABB := geom.EmptyAABB()
	for i := primStart; i < primEnd; i++ {
		splitAABB = geom.MergePoint(splitAABB, b.primitives[i].CalcAABB().Center())
	}
	splitAxis := splitAABB.LongestAxis()

	splitIdx := primStart + nPrims/2
	partitionByCenter(b.primitives, primStart, primEnd-1, splitIdx, splitAxis)

	if splitIdx == primStart || splitIdx == primEnd {
		return b.addLeaf(bbox, primStart, nPrims)
	}

	nodeIndex := uint32(len(b.nodes))
	b.nodes = append(b.nodes, Node{BBox: bbox, Axis: uint8(splitAxis)})
	b.stats.NInternalNodes++

	// Left child always lands at nodeIndex+1.
	b.buildNode(primStart, splitIdx)

	secondChildOffset := uint32(len(b.nodes))
	b.buildNode(splitIdx, primEnd)

	b.nodes[nodeIndex].Offset = secondChildOffset
	return nodeIndex
}

func (b *BVH) addLeaf(bbox geom.AABB, primStart, nPrims int) uint32 {
	nodeIndex := uint32(len(b.nodes))
	b.nodes = append(b.nodes, Node{
		BBox:        bbox,
		Offset:      uint32(primStart),
		NPrimitives: uint16(nPrims),
	})
	b.stats.NLeafNodes++
	return nodeIndex
}

// Intersect runs a closest-hit query: it returns true iff some triangle
// intersects ray within [ray.Tmin, ray.Tmax], and on success info holds the
// nearest such hit. ray.Tmax is tightened in place as closer hits are
// found; callers must not share a single *Ray across concurrent queries.
func (b *BVH) Intersect(ray *geom.Ray, info *geom.IntersectInfo) bool {
	if len(b.nodes) == 0 {
		return false
	}
	return b.intersectNode(0, ray, info)
}

func (b *BVH) intersectNode(nodeIdx uint32, ray *geom.Ray, info *geom.IntersectInfo) bool {
	node := &b.nodes[nodeIdx]
	if !node.BBox.Intersect(ray) {
		return false
	}

	if node.NPrimitives > 0 {
		hit := false
		end := node.Offset + uint32(node.NPrimitives)
		for i := node.Offset; i < end; i++ {
			if b.primitives[i].Intersect(ray, info) {
				hit = true
				ray.Tmax = info.T
			}
		}
		return hit
	}

	// Visit near child first for this ray, but always visit the far
	// child too: its subtree may still hold a closer hit.
	nearIdx, farIdx := nodeIdx+1, node.Offset
	if ray.DirInvSign[node.Axis] != 0 {
		nearIdx, farIdx = farIdx, nearIdx
	}

	hitNear := b.intersectNode(nearIdx, ray, info)
	hitFar := b.intersectNode(farIdx, ray, info)
	return hitNear || hitFar
}

// NumNodes returns the total number of nodes (internal + leaf).
func (b *BVH) NumNodes() int { return b.stats.NNodes }

// NumInternalNodes returns the number of internal nodes.
func (b *BVH) NumInternalNodes() int { return b.stats.NInternalNodes }

// NumLeafNodes returns the number of leaf nodes.
func (b *BVH) NumLeafNodes() int { return b.stats.NLeafNodes }

// RootAABB returns the bounding box of the whole tree, or an empty AABB
// if the tree has no nodes (an empty mesh).
func (b *BVH) RootAABB() geom.AABB {
	if len(b.nodes) == 0 {
		return geom.EmptyAABB()
	}
	return b.nodes[0].BBox
}
