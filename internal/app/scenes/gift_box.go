package scenes

import (
	"github.com/rook-computer/favicon/internal/render"
	"github.com/rook-computer/favicon/internal/render/layout"
)

// Gift box geometry, as inclusive pixel boxes on the 128x128 canvas.
const (
	boxX, boxY      = 36, 54
	boxW, boxH      = 56, 48
	boxRadius       = 3
	boxOutlineWidth = 2
)

// GiftBoxScene draws a white gift box with a red ribbon and a white bow on a
// red circular background.
type GiftBoxScene struct{}

func (GiftBoxScene) Draw(d render.Drawer) {
	w, h := d.Size()
	red := render.Filled(render.Background)
	white := render.Filled(render.Foreground)

	d.Clear()
	d.Ellipse(layout.Box(0, 0, w, h), red)

	d.RoundedRectangle(layout.Box(boxX, boxY, boxX+boxW, boxY+boxH), boxRadius, render.ShapeStyle{
		Fill:    render.Foreground,
		Outline: render.Foreground,
		Width:   boxOutlineWidth,
	})

	// Ribbon
	d.Rectangle(layout.Box(61, 54, 67, 102), red)
	d.Rectangle(layout.Box(36, 76, 92, 82), red)

	// Bow: stem from the lid up, two loops, then a narrower stem over the first.
	d.Rectangle(layout.Box(61, 26, 67, 54), white)
	d.Ellipse(layout.Box(42, 32, 58, 48), white)
	d.Ellipse(layout.Box(70, 32, 86, 48), white)
	d.Rectangle(layout.Box(62, 30, 66, 54), white)
}
