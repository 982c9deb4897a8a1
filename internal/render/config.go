package render

import (
	"image/color"
	"image/png"
)

// Global render configuration for the favicon palette and canvas.
var (
	// Background is the circle and ribbon color (#DC2626), Foreground the box and bow.
	Background = color.RGBA{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF}
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Canvas size in pixels; the output is written at this size, unscaled.
	CanvasWidth  = 128
	CanvasHeight = 128

	// PNGCompression trades encode time for the smallest lossless file.
	PNGCompression = png.BestCompression
)
