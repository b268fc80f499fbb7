// Package film holds a linear-radiance accumulator and writes it out as an
// ASCII PPM image through a buffered os.Create/bufio.Writer pair.
package film

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/TUS-OSK/go-bvhtrace/types"
)

// Framebuffer accumulates linear radiance per pixel. The zero value is not
// usable; construct with New.
type Framebuffer struct {
	Width, Height int
	pixels        []types.Vec3
}

// New allocates a black w x h framebuffer.
func New(w, h int) *Framebuffer {
	return &Framebuffer{Width: w, Height: h, pixels: make([]types.Vec3, w*h)}
}

// At returns the current radiance stored at (x, y).
func (f *Framebuffer) At(x, y int) types.Vec3 {
	return f.pixels[y*f.Width+x]
}

// Set overwrites the radiance stored at (x, y).
func (f *Framebuffer) Set(x, y int, c types.Vec3) {
	f.pixels[y*f.Width+x] = c
}

// Add accumulates c into the radiance already stored at (x, y).
func (f *Framebuffer) Add(x, y int, c types.Vec3) {
	f.pixels[y*f.Width+x] = f.pixels[y*f.Width+x].Add(c)
}

const gamma = 1.0 / 2.2

// WritePPM writes the framebuffer to path as an ASCII (P3) PPM image, gamma
// correcting each channel by c^(1/2.2) and clamping to [0, 255].
func (f *Framebuffer) WritePPM(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("film: creating %s: %w", path, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			fmt.Fprintf(w, "%d %d %d\n", toByte(c[0]), toByte(c[1]), toByte(c[2]))
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("film: writing %s: %w", path, err)
	}
	return nil
}

func toByte(linear float32) int {
	if linear < 0 {
		linear = 0
	}
	corrected := float32(math.Pow(float64(linear), gamma))
	v := int(corrected*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
