package render

import (
	"image"
	"image/color"
)

// Scene is a fixed sequence of drawing calls. Later calls paint over
// earlier ones wherever they overlap.
type Scene interface {
	Draw(d Drawer)
}

// Drawer is an abstraction the renderer provides to scenes to draw primitives
// without exposing the backing canvas.
type Drawer interface {
	// Size returns the canvas size (in pixels) that scenes draw into.
	Size() (width int, height int)

	// Clear resets every pixel to fully transparent.
	Clear()

	// Shape primitives. Boxes are half-open rectangles; use layout.Box to
	// build one from inclusive corner coordinates. Parts outside the canvas
	// are clipped.
	Ellipse(box image.Rectangle, style ShapeStyle)
	Rectangle(box image.Rectangle, style ShapeStyle)
	RoundedRectangle(box image.Rectangle, radius int, style ShapeStyle)
}

// ShapeStyle describes how a shape is painted. A nil Fill leaves the interior
// untouched; the outline is drawn after the fill and only when both Outline
// is set and Width > 0.
type ShapeStyle struct {
	Fill    color.Color
	Outline color.Color
	Width   int
}

// Filled returns a style that only fills the shape with c.
func Filled(c color.Color) ShapeStyle { return ShapeStyle{Fill: c} }
