package mesh

import "github.com/TUS-OSK/go-bvhtrace/types"

// Polygon is a non-owning view over caller-owned flat mesh arrays. It never
// copies vertices, indices, normals or uvs — the caller guarantees those
// slices outlive any Triangle or BVH built against this view.
//
// vertexCount and indexCount are tracked as two explicit fields rather than
// overloading a single "nVertices" field with the index count, so
// nFaces()'s divisor is unambiguous at every call site.
type Polygon struct {
	vertexCount int
	indexCount  int

	vertices []float32
	indices  []uint32
	normals  []float32
	uvs      []float32
}

// NewPolygon binds a Polygon view to the given flat arrays. vertices holds
// 3 floats per vertex; indices holds 3 indices per face; normals (optional)
// is parallel to vertices; uvs (optional) holds 2 floats per vertex.
func NewPolygon(vertexCount, indexCount int, vertices []float32, indices []uint32, normals []float32, uvs []float32) *Polygon {
	return &Polygon{
		vertexCount: vertexCount,
		indexCount:  indexCount,
		vertices:    vertices,
		indices:     indices,
		normals:     normals,
		uvs:         uvs,
	}
}

// NFaces returns the number of triangular faces in the view.
func (p *Polygon) NFaces() int {
	return p.indexCount / 3
}

// NVertices returns the number of vertices in the view.
func (p *Polygon) NVertices() int {
	return p.vertexCount
}

// HasNormals reports whether the view carries per-vertex normals.
func (p *Polygon) HasNormals() bool {
	return p.normals != nil
}

// HasUVs reports whether the view carries per-vertex texture coordinates.
func (p *Polygon) HasUVs() bool {
	return p.uvs != nil
}

// Vertex returns the position of vertex i. Out-of-range i is a programming
// error; callers are expected to stay within [0, NVertices()).
func (p *Polygon) Vertex(i uint32) types.Vec3 {
	o := 3 * i
	return types.Vec3{p.vertices[o], p.vertices[o+1], p.vertices[o+2]}
}

// Normal returns the normal of vertex i. Only valid when HasNormals().
func (p *Polygon) Normal(i uint32) types.Vec3 {
	o := 3 * i
	return types.Vec3{p.normals[o], p.normals[o+1], p.normals[o+2]}
}

// UV returns the texture coordinate of vertex i. Only valid when HasUVs().
func (p *Polygon) UV(i uint32) [2]float32 {
	o := 2 * i
	return [2]float32{p.uvs[o], p.uvs[o+1]}
}

// Indices returns the three vertex indices making up face f.
func (p *Polygon) Indices(f uint32) [3]uint32 {
	o := 3 * f
	return [3]uint32{p.indices[o], p.indices[o+1], p.indices[o+2]}
}
