package film

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/TUS-OSK/go-bvhtrace/types"
)

func TestAddAccumulatesRadiance(t *testing.T) {
	fb := New(2, 2)
	fb.Add(0, 0, types.Vec3{1, 0, 0})
	fb.Add(0, 0, types.Vec3{0, 1, 0})
	got := fb.At(0, 0)
	want := types.Vec3{1, 1, 0}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWritePPMGammaCorrectsAndClamps(t *testing.T) {
	fb := New(1, 1)
	fb.Set(0, 0, types.Vec3{1, 0.5, 2}) // 2 must clamp to 255 after gamma
	path := t.TempDir() + "/out.ppm"

	if err := fb.WritePPM(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("could not reopen written file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 4 {
		t.Fatalf("expected a 4-line PPM (header x3 + 1 pixel), got %d lines: %v", len(lines), lines)
	}
	if lines[0] != "P3" || lines[1] != "1 1" || lines[2] != "255" {
		t.Fatalf("unexpected header: %v", lines[:3])
	}

	wantG := int(math.Pow(0.5, 1.0/2.2)*255 + 0.5)
	wantLine := fmt.Sprintf("255 %d 255", wantG)
	if strings.TrimSpace(lines[3]) != wantLine {
		t.Fatalf("expected pixel line %q, got %q", wantLine, lines[3])
	}
}
