// genfavicon draws the site favicon and writes it to public/favicon.png at the
// repository root.
// Usage: go run ./cmd/genfavicon
//
// The output path is derived from this file's compile-time location, so it is
// only meaningful when run from a checkout. A binary built with -trimpath or
// copied to another machine resolves a relative or stale path.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rook-computer/favicon/internal/app"
	"github.com/rook-computer/favicon/internal/app/scenes"
	"github.com/rook-computer/favicon/internal/render"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, defaultOutputPath()))
}

// run generates the favicon at outputPath and returns the process exit code.
func run(stdout, stderr io.Writer, outputPath string) int {
	renderer := render.NewCanvasRenderer(render.CanvasWidth, render.CanvasHeight)
	a := app.New(renderer, scenes.GiftBoxScene{})

	if err := a.Generate(outputPath); err != nil {
		fmt.Fprintln(stderr, "favicon generation error:", err)
		return 1
	}
	fmt.Fprintf(stdout, "✓ Favicon PNG generated successfully at %s\n", outputPath)
	return 0
}

// defaultOutputPath resolves public/favicon.png relative to this source file,
// two directories up, so the result does not depend on the working directory.
func defaultOutputPath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("public", "favicon.png")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "public", "favicon.png")
}
