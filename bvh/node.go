package bvh

import "github.com/TUS-OSK/go-bvhtrace/geom"

// Node is the packed, 32-byte-aligned BVH node used by the primary
// variant. The meaning of Offset depends on NPrimitives: for a leaf
// (NPrimitives > 0) it is the start of the node's primitive range; for an
// internal node it is the index of the second (right) child. The first
// child of an internal node is always the very next entry in the node
// array, so it never needs to be stored explicitly.
type Node struct {
	BBox        geom.AABB // 24 bytes
	Offset      uint32    // primIndicesOffset (leaf) or secondChildOffset (internal)
	NPrimitives uint16    // > 0 iff this is a leaf
	Axis        uint8     // split axis, meaningful only for internal nodes
}

// Stats records bookkeeping counters gathered while a BVH is built.
type Stats struct {
	NNodes         int
	NInternalNodes int
	NLeafNodes     int
}
