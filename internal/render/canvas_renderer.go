package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/favicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// CanvasRenderer renders scenes into an offscreen RGBA canvas.
type CanvasRenderer struct {
	width  int
	height int
	canvas *image.RGBA
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewCanvasRenderer(width, height int) *CanvasRenderer {
	return &CanvasRenderer{width: width, height: height}
}

// Render draws scene onto a freshly allocated transparent canvas and returns
// it. The returned image is owned by the caller; the next Render call
// allocates a new one.
func (r *CanvasRenderer) Render(scene Scene) *image.RGBA {
	r.canvas = image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.Logger != nil {
		r.Logger.Infof("canvas", "allocated %dx%d canvas", r.width, r.height)
	}
	scene.Draw(r)
	canvas := r.canvas
	r.canvas = nil
	return canvas
}

// Drawer primitives
func (r *CanvasRenderer) Size() (int, int) { return r.width, r.height }

func (r *CanvasRenderer) Clear() {
	xdraw.Draw(r.canvas, r.canvas.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
}

func (r *CanvasRenderer) Ellipse(box image.Rectangle, style ShapeStyle) {
	r.paint(ellipseMask(box), style.Fill)
	if style.Outline != nil && style.Width > 0 {
		inner := ellipseMask(layout.Inset(box, style.Width))
		r.paint(ringMask(ellipseMask(box), inner), style.Outline)
	}
}

func (r *CanvasRenderer) Rectangle(box image.Rectangle, style ShapeStyle) {
	box = layout.Normalize(box)
	r.paint(rectMask(box), style.Fill)
	if style.Outline != nil && style.Width > 0 {
		inner := rectMask(layout.Inset(box, style.Width))
		r.paint(ringMask(rectMask(box), inner), style.Outline)
	}
}

func (r *CanvasRenderer) RoundedRectangle(box image.Rectangle, radius int, style ShapeStyle) {
	r.paint(roundedRectMask(box, radius), style.Fill)
	if style.Outline != nil && style.Width > 0 {
		innerRadius := radius - style.Width
		if innerRadius < 0 {
			innerRadius = 0
		}
		inner := roundedRectMask(layout.Inset(box, style.Width), innerRadius)
		r.paint(ringMask(roundedRectMask(box, radius), inner), style.Outline)
	}
}

// paint composites c through mask. Shape colors are opaque, so Over with a
// binary mask replaces covered pixels and leaves the rest alone.
func (r *CanvasRenderer) paint(mask shapeMask, c color.Color) {
	if c == nil || r.canvas == nil {
		return
	}
	bounds := mask.Bounds().Intersect(r.canvas.Bounds())
	if bounds.Empty() {
		if r.Logger != nil {
			r.Logger.Infof("canvas", "shape %v outside canvas, skipped", mask.Bounds())
		}
		return
	}
	xdraw.DrawMask(r.canvas, bounds, &image.Uniform{C: c}, image.Point{}, mask, bounds.Min, xdraw.Over)
}
