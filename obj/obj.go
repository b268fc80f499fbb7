// Package obj loads triangle meshes from the Wavefront OBJ format into the
// flat arrays mesh.NewPolygon expects.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mesh holds the flat, parallel arrays produced by Load, ready to be handed
// to mesh.NewPolygon.
type Mesh struct {
	Vertices []float32 // 3 floats per vertex
	Indices  []uint32  // 3 indices per triangular face
	Normals  []float32 // 3 floats per vertex; nil if the file defines none
	UVs      []float32 // 2 floats per vertex; nil if the file defines none
}

// Load reads a Wavefront OBJ file from path. It supports "v", "vn", "vt"
// and "f" lines; faces may be given as v, v/vt, v//vn or v/vt/vn, and faces
// with more than three vertices are fan-triangulated.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: opening %s: %w", path, err)
	}
	defer f.Close()

	m, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("obj: parsing %s: %w", path, err)
	}
	return m, nil
}

type rawVec3 [3]float32
type rawVec2 [2]float32

type faceVertex struct {
	v, vt, vn int // 0-based indices; -1 when absent
}

func parse(r io.Reader) (*Mesh, error) {
	var positions, normalsIn []rawVec3
	var uvsIn []rawVec2

	// key dedupes (v, vt, vn) triples into a single output
	// vertex, since a vertex with different UV/normal per face would
	// otherwise need to be split anyway.
	type key struct{ v, vt, vn int }
	vertexIndex := make(map[key]uint32)

	var outVertices, outNormals []float32
	var outUVs []float32
	var outIndices []uint32
	haveNormals, haveUVs := false, false

	emit := func(fv faceVertex) (uint32, error) {
		k := key{fv.v, fv.vt, fv.vn}
		if idx, ok := vertexIndex[k]; ok {
			return idx, nil
		}
		if fv.v < 0 || fv.v >= len(positions) {
			return 0, fmt.Errorf("vertex index %d out of range", fv.v+1)
		}
		idx := uint32(len(outVertices) / 3)
		p := positions[fv.v]
		outVertices = append(outVertices, p[0], p[1], p[2])

		if fv.vn >= 0 {
			if fv.vn >= len(normalsIn) {
				return 0, fmt.Errorf("normal index %d out of range", fv.vn+1)
			}
			n := normalsIn[fv.vn]
			outNormals = append(outNormals, n[0], n[1], n[2])
			haveNormals = true
		} else {
			outNormals = append(outNormals, 0, 0, 0)
		}

		if fv.vt >= 0 {
			if fv.vt >= len(uvsIn) {
				return 0, fmt.Errorf("uv index %d out of range", fv.vt+1)
			}
			uv := uvsIn[fv.vt]
			outUVs = append(outUVs, uv[0], uv[1])
			haveUVs = true
		} else {
			outUVs = append(outUVs, 0, 0)
		}

		vertexIndex[k] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || tokens[0] == "#" {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseVec3(tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVec3(tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			normalsIn = append(normalsIn, v)
		case "vt":
			v, err := parseVec2(tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			uvsIn = append(uvsIn, v)
		case "f":
			if len(tokens) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNum, len(tokens)-1)
			}

			faceVertices := make([]faceVertex, 0, len(tokens)-1)
			for _, tok := range tokens[1:] {
				fv, err := parseFaceVertex(tok, len(positions), len(uvsIn), len(normalsIn))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				faceVertices = append(faceVertices, fv)
			}

			// Fan-triangulate: (0, i, i+1) for i in [1, n-1).
			anchor, err := emit(faceVertices[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			for i := 1; i < len(faceVertices)-1; i++ {
				b, err := emit(faceVertices[i])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				c, err := emit(faceVertices[i+1])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				outIndices = append(outIndices, anchor, b, c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	m := &Mesh{Vertices: outVertices, Indices: outIndices}
	if haveNormals {
		m.Normals = outNormals
	}
	if haveUVs {
		m.UVs = outUVs
	}
	return m, nil
}

// parseFaceVertex parses one "v", "v/vt", "v//vn" or "v/vt/vn" token.
// Indices are 1-based in the file and may be negative to count back from
// the end of the list currently parsed.
func parseFaceVertex(tok string, nv, nvt, nvn int) (faceVertex, error) {
	parts := strings.Split(tok, "/")
	if parts[0] == "" {
		return faceVertex{}, fmt.Errorf("face vertex %q has no vertex index", tok)
	}

	fv := faceVertex{v: -1, vt: -1, vn: -1}

	v, err := resolveIndex(parts[0], nv)
	if err != nil {
		return faceVertex{}, fmt.Errorf("vertex index in %q: %w", tok, err)
	}
	fv.v = v

	if len(parts) >= 2 && parts[1] != "" {
		vt, err := resolveIndex(parts[1], nvt)
		if err != nil {
			return faceVertex{}, fmt.Errorf("uv index in %q: %w", tok, err)
		}
		fv.vt = vt
	}
	if len(parts) >= 3 && parts[2] != "" {
		vn, err := resolveIndex(parts[2], nvn)
		if err != nil {
			return faceVertex{}, fmt.Errorf("normal index in %q: %w", tok, err)
		}
		fv.vn = vn
	}

	return fv, nil
}

func resolveIndex(token string, listLen int) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return -1, err
	}
	var idx int
	if n < 0 {
		idx = listLen + n
	} else {
		idx = n - 1
	}
	if idx < 0 || idx >= listLen {
		return -1, fmt.Errorf("index %d out of bounds (have %d)", n, listLen)
	}
	return idx, nil
}

func parseVec3(tokens []string) (rawVec3, error) {
	if len(tokens) < 4 {
		return rawVec3{}, fmt.Errorf("%q expects 3 arguments, got %d", tokens[0], len(tokens)-1)
	}
	var v rawVec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return rawVec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(tokens []string) (rawVec2, error) {
	if len(tokens) < 3 {
		return rawVec2{}, fmt.Errorf("%q expects 2 arguments, got %d", tokens[0], len(tokens)-1)
	}
	var v rawVec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return rawVec2{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
