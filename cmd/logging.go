package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/TUS-OSK/go-bvhtrace/internal/xlog"
	"github.com/urfave/cli"
)

var logger = xlog.New("bvhtrace")

// setupLogging wires verbosity and an optional file sink from the global
// --v/--vv/--log-file flags before a command runs.
func setupLogging(ctx *cli.Context) error {
	sinks := []io.Writer{os.Stdout}
	if path := ctx.GlobalString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", path, err)
		}
		sinks = append(sinks, f)
	}
	xlog.SetSink(sinks...)

	switch {
	case ctx.GlobalBool("vv"):
		xlog.SetLevel(xlog.Debug)
	case ctx.GlobalBool("v"):
		xlog.SetLevel(xlog.Info)
	default:
		xlog.SetLevel(xlog.Notice)
	}
	return nil
}
