package config

import (
	"flag"
	"testing"

	"github.com/TUS-OSK/go-bvhtrace/camera"
	"github.com/urfave/cli"
)

func contextWithFlags(t *testing.T, ints map[string]int, strs map[string]string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for name, v := range ints {
		set.Int(name, v, "")
	}
	for name, v := range strs {
		set.String(name, v, "")
	}
	return cli.NewContext(nil, set, nil)
}

func TestRenderOptionsOverridesDefaults(t *testing.T) {
	ctx := contextWithFlags(t, map[string]int{
		"spp":        64,
		"bounces":    8,
		"rr-bounces": 3,
	}, nil)

	opts := RenderOptions(ctx)
	if opts.SamplesPerPixel != 64 {
		t.Fatalf("expected SamplesPerPixel 64, got %d", opts.SamplesPerPixel)
	}
	if opts.MaxBounces != 8 {
		t.Fatalf("expected MaxBounces 8, got %d", opts.MaxBounces)
	}
	if opts.RRStartBounce != 3 {
		t.Fatalf("expected RRStartBounce 3, got %d", opts.RRStartBounce)
	}
	if opts.Workers == 0 {
		t.Fatal("expected DefaultOptions' Workers field to survive the override")
	}
}

func TestCameraModeDefaultsToForward(t *testing.T) {
	ctx := contextWithFlags(t, nil, map[string]string{"camera-mode": ""})
	if mode := CameraMode(ctx); mode != camera.ModeForward {
		t.Fatalf("expected ModeForward for an empty flag, got %v", mode)
	}
}

func TestCameraModeRecognizesBackward(t *testing.T) {
	ctx := contextWithFlags(t, nil, map[string]string{"camera-mode": "backward"})
	if mode := CameraMode(ctx); mode != camera.ModeBackward {
		t.Fatalf("expected ModeBackward, got %v", mode)
	}
}
