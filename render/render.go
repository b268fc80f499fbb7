// Package render implements a tile-parallel path-tracing integrator over a
// bvh.BVH, following the per-worker-RNG goroutine pool pattern the
// photons4d example uses for its own Monte Carlo estimation.
package render

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/TUS-OSK/go-bvhtrace/bvh"
	"github.com/TUS-OSK/go-bvhtrace/camera"
	"github.com/TUS-OSK/go-bvhtrace/film"
	"github.com/TUS-OSK/go-bvhtrace/geom"
	"github.com/TUS-OSK/go-bvhtrace/types"
)

// Options configures a render pass.
type Options struct {
	SamplesPerPixel int
	MaxBounces      int
	RRStartBounce   int
	TileHeight      int
	Workers         int

	// SkyRadiance is returned for rays that escape the scene entirely
	// (no BSDF system is implemented — Lambertian-only shading with a
	// flat ambient sky is the illustrative stand-in).
	SkyRadiance types.Vec3
	// AlbedoFallback is the diffuse albedo used for every hit, since
	// the core mesh carries no material data.
	AlbedoFallback types.Vec3
}

// DefaultOptions returns sensible defaults matching the shape of the
// teacher's renderer.Options.
func DefaultOptions() Options {
	return Options{
		SamplesPerPixel: 16,
		MaxBounces:      4,
		RRStartBounce:   2,
		TileHeight:      8,
		Workers:         runtime.NumCPU(),
		SkyRadiance:     types.Vec3{0.1, 0.1, 0.15},
		AlbedoFallback:  types.Vec3{0.8, 0.8, 0.8},
	}
}

// Stats reports the worker count and elapsed time of a completed render;
// cmd logs both as structured fields.
type Stats struct {
	Workers    int
	RenderTime time.Duration
}

// Render fills fb by path-tracing bvhTree through cam, distributing rows
// across opts.Workers goroutines. Each worker owns a private *rand.Rand, a
// private geom.Ray/geom.IntersectInfo pair, and writes only to the rows it
// claims, so no synchronization is needed on fb itself.
func Render(bvhTree *bvh.BVH, cam *camera.Camera, fb *film.Framebuffer, opts Options) Stats {
	start := time.Now()

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	tileHeight := opts.TileHeight
	if tileHeight < 1 {
		tileHeight = 1
	}

	type tile struct{ y0, y1 int }
	tiles := make(chan tile, (fb.Height/tileHeight)+1)
	for y := 0; y < fb.Height; y += tileHeight {
		y1 := y + tileHeight
		if y1 > fb.Height {
			y1 = fb.Height
		}
		tiles <- tile{y0: y, y1: y1}
	}
	close(tiles)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			seed := time.Now().UnixNano() ^ int64(uint64(workerID)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))

			for t := range tiles {
				renderTile(bvhTree, cam, fb, opts, rng, t.y0, t.y1)
			}
		}(w)
	}
	wg.Wait()

	return Stats{Workers: workers, RenderTime: time.Since(start)}
}

func renderTile(bvhTree *bvh.BVH, cam *camera.Camera, fb *film.Framebuffer, opts Options, rng *rand.Rand, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < fb.Width; x++ {
			var accum types.Vec3
			for s := 0; s < opts.SamplesPerPixel; s++ {
				u := (float32(x)+rng.Float32())/float32(fb.Width)*2 - 1
				v := 1 - (float32(y)+rng.Float32())/float32(fb.Height)*2
				ray := cam.SampleRay(u, v)
				accum = accum.Add(trace(bvhTree, ray, opts, rng, 0))
			}
			fb.Set(x, y, accum.Mul(1.0/float32(opts.SamplesPerPixel)))
		}
	}
}

func trace(bvhTree *bvh.BVH, ray *geom.Ray, opts Options, rng *rand.Rand, depth int) types.Vec3 {
	var info geom.IntersectInfo
	if !bvhTree.Intersect(ray, &info) {
		return opts.SkyRadiance
	}

	if depth >= opts.MaxBounces {
		return types.Vec3{}
	}

	if depth >= opts.RRStartBounce {
		const survivalProb = 0.75
		if rng.Float32() > survivalProb {
			return types.Vec3{}
		}
		return bounce(bvhTree, info, opts, rng, depth).Mul(1.0 / survivalProb)
	}

	return bounce(bvhTree, info, opts, rng, depth)
}

func bounce(bvhTree *bvh.BVH, info geom.IntersectInfo, opts Options, rng *rand.Rand, depth int) types.Vec3 {
	dir := cosineHemisphereSample(info.HitNormal, rng)
	next := geom.NewRay(info.HitPos, dir)
	incoming := trace(bvhTree, next, opts, rng, depth+1)
	return opts.AlbedoFallback.MulVec3(incoming)
}

// cosineHemisphereSample draws a direction from the cosine-weighted
// hemisphere around n using the standard disk-projection construction.
func cosineHemisphereSample(n types.Vec3, rng *rand.Rand) types.Vec3 {
	r1, r2 := rng.Float32(), rng.Float32()
	r := float32(math.Sqrt(float64(r1)))
	theta := 2 * math.Pi * float64(r2)
	x := r * float32(math.Cos(theta))
	y := r * float32(math.Sin(theta))
	z := float32(math.Sqrt(math.Max(0, float64(1-r1))))

	tangent, bitangent := orthonormalBasis(n)
	return tangent.Mul(x).Add(bitangent.Mul(y)).Add(n.Mul(z)).Normalize()
}

// orthonormalBasis returns two vectors that, together with n, form a
// right-handed orthonormal basis. n must already be unit length.
func orthonormalBasis(n types.Vec3) (types.Vec3, types.Vec3) {
	var up types.Vec3
	if n[0] < 0.9 && n[0] > -0.9 {
		up = types.Vec3{1, 0, 0}
	} else {
		up = types.Vec3{0, 1, 0}
	}
	tangent := up.Cross(n).Normalize()
	bitangent := n.Cross(tangent)
	return tangent, bitangent
}
