package mesh

import "testing"

func quadPolygon() *Polygon {
	vertices := []float32{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return NewPolygon(4, 6, vertices, indices, nil, nil)
}

func TestNFacesAndNVertices(t *testing.T) {
	p := quadPolygon()
	if p.NFaces() != 2 {
		t.Fatalf("expected 2 faces, got %d", p.NFaces())
	}
	if p.NVertices() != 4 {
		t.Fatalf("expected 4 vertices, got %d", p.NVertices())
	}
}

func TestHasNormalsAndUVsReflectNilness(t *testing.T) {
	p := quadPolygon()
	if p.HasNormals() || p.HasUVs() {
		t.Fatal("expected no normals/uvs on a bare polygon")
	}

	withAttrs := NewPolygon(4, 6,
		[]float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		[]uint32{0, 1, 2, 0, 2, 3},
		[]float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
		[]float32{0, 0, 1, 0, 1, 1, 0, 1},
	)
	if !withAttrs.HasNormals() || !withAttrs.HasUVs() {
		t.Fatal("expected both normals and uvs to be reported present")
	}
}

func TestIndicesReturnsFaceTriple(t *testing.T) {
	p := quadPolygon()
	idx := p.Indices(1)
	want := [3]uint32{0, 2, 3}
	if idx != want {
		t.Fatalf("expected second face indices %v, got %v", want, idx)
	}
}

func TestVertexReadsBackCoordinates(t *testing.T) {
	p := quadPolygon()
	v := p.Vertex(2)
	if v[0] != 1 || v[1] != 1 || v[2] != 0 {
		t.Fatalf("expected vertex 2 = (1,1,0), got %v", v)
	}
}
