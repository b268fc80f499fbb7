package bvh

import (
	"github.com/TUS-OSK/go-bvhtrace/geom"
	"github.com/TUS-OSK/go-bvhtrace/mesh"
)

// PointerBVH is the pedagogical reference variant: instead of permuting
// primitives directly it permutes a primIndices slice, and instead of a
// packed node array with an implicit left-child adjacency it stores nodes
// in an arena (a plain slice) addressed by index, with each node naming
// its own left/right child index explicitly. This trades an owning
// `child[2]` pointer pair for a cycle-free, easily reasoned-about indexed
// tree that needs no destructor walk.
type PointerBVH struct {
	primitives  []geom.Triangle
	primIndices []int
	nodes       []pointerNode
	stats       Stats
}

type pointerNode struct {
	bbox        geom.AABB
	primOffset  int
	nPrimitives int
	axis        int
	left, right int // -1 when this node is a leaf
}

func (n *pointerNode) isLeaf() bool { return n.nPrimitives > 0 }

// BuildPointer constructs the reference pointer-linked variant over every
// face of p. Semantically equivalent to Build; kept as a cross-check that
// both traversal strategies agree on every ray.
func BuildPointer(p *mesh.Polygon) *PointerBVH {
	n := p.NFaces()
	primitives := make([]geom.Triangle, n)
	for f := 0; f < n; f++ {
		primitives[f] = geom.NewTriangle(p, uint32(f))
	}

	primIndices := make([]int, n)
	for i := range primIndices {
		primIndices[i] = i
	}

	b := &PointerBVH{primitives: primitives, primIndices: primIndices}
	if n > 0 {
		b.buildNode(0, n)
	}
	b.stats.NNodes = b.stats.NInternalNodes + b.stats.NLeafNodes
	return b
}

func (b *PointerBVH) bboxOf(primIdx int) geom.AABB {
	return b.primitives[primIdx].CalcAABB()
}

func (b *PointerBVH) buildNode(primStart, primEnd int) int {
	bbox := geom.EmptyAABB()
	for i := primStart; i < primEnd; i++ {
		bbox = geom.Merge(bbox, b.bboxOf(b.primIndices[i]))
	}

	nPrims := primEnd - primStart
	if nPrims <= leafCutoff {
		return b.addLeaf(bbox, primStart, nPrims)
	}

	splitAABB := geom.EmptyAABB()
	for i := primStart; i < primEnd; i++ {
		splitAABB = geom.MergePoint(splitAABB, b.bboxOf(b.primIndices[i]).Center())
	}
	splitAxis := splitAABB.LongestAxis()
	splitIdx := primStart + nPrims/2

	partitionIndicesByCenter(b, primStart, primEnd-1, splitIdx, splitAxis)

	if splitIdx == primStart || splitIdx == primEnd {
		return b.addLeaf(bbox, primStart, nPrims)
	}

	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, pointerNode{bbox: bbox, primOffset: primStart, axis: splitAxis})
	b.stats.NInternalNodes++

	left := b.buildNode(primStart, splitIdx)
	right := b.buildNode(splitIdx, primEnd)
	b.nodes[nodeIndex].left = left
	b.nodes[nodeIndex].right = right

	return nodeIndex
}

func (b *PointerBVH) addLeaf(bbox geom.AABB, primStart, nPrims int) int {
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, pointerNode{
		bbox:        bbox,
		primOffset:  primStart,
		nPrimitives: nPrims,
		left:        -1,
		right:       -1,
	})
	b.stats.NLeafNodes++
	return nodeIndex
}

// partitionIndicesByCenter is partitionByCenter's primIndices-indirection
// counterpart: it permutes b.primIndices rather than a slice of Triangle.
func partitionIndicesByCenter(b *PointerBVH, lo, hi, k, axis int) {
	for lo < hi {
		pivot := b.bboxOf(b.primIndices[hi]).Center()[axis]
		i := lo
		for j := lo; j < hi; j++ {
			if b.bboxOf(b.primIndices[j]).Center()[axis] < pivot {
				b.primIndices[i], b.primIndices[j] = b.primIndices[j], b.primIndices[i]
				i++
			}
		}
		b.primIndices[i], b.primIndices[hi] = b.primIndices[hi], b.primIndices[i]

		switch {
		case i == k:
			return
		case k < i:
			hi = i - 1
		default:
			lo = i + 1
		}
	}
}

// Intersect runs the same closest-hit contract as BVH.Intersect, but
// traverses with an explicit stack instead of recursion, so it stays
// robust on trees too deep for a comfortable call stack.
func (b *PointerBVH) Intersect(ray *geom.Ray, info *geom.IntersectInfo) bool {
	if len(b.nodes) == 0 {
		return false
	}

	hit := false
	stack := make([]int, 0, 64)
	stack = append(stack, 0)

	for len(stack) > 0 {
		nodeIdx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &b.nodes[nodeIdx]
		if !node.bbox.Intersect(ray) {
			continue
		}

		if node.isLeaf() {
			end := node.primOffset + node.nPrimitives
			for i := node.primOffset; i < end; i++ {
				primIdx := b.primIndices[i]
				if b.primitives[primIdx].Intersect(ray, info) {
					hit = true
					ray.Tmax = info.T
				}
			}
			continue
		}

		// Push far child first so the near child is popped (and thus
		// visited) first; both still get visited regardless of what
		// the near child finds.
		if ray.DirInvSign[node.axis] == 0 {
			stack = append(stack, node.right, node.left)
		} else {
			stack = append(stack, node.left, node.right)
		}
	}

	return hit
}

// NumNodes returns the total number of nodes (internal + leaf).
func (b *PointerBVH) NumNodes() int { return b.stats.NNodes }

// NumInternalNodes returns the number of internal nodes.
func (b *PointerBVH) NumInternalNodes() int { return b.stats.NInternalNodes }

// NumLeafNodes returns the number of leaf nodes.
func (b *PointerBVH) NumLeafNodes() int { return b.stats.NLeafNodes }

// RootAABB returns the bounding box of the whole tree.
func (b *PointerBVH) RootAABB() geom.AABB {
	if len(b.nodes) == 0 {
		return geom.EmptyAABB()
	}
	return b.nodes[0].bbox
}
