package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/favicon/internal/render/layout"
)

var (
	opaqueMask      = color.Alpha{A: 0xFF}
	transparentMask = color.Alpha{}
)

// shapeMask is a binary coverage mask. Pixels are sampled at their centers,
// so there is no anti-aliasing and the output stays byte-for-byte stable.
type shapeMask struct {
	bounds   image.Rectangle
	contains func(x, y int) bool
}

func (m shapeMask) ColorModel() color.Model { return color.AlphaModel }
func (m shapeMask) Bounds() image.Rectangle { return m.bounds }
func (m shapeMask) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.bounds) || !m.contains(x, y) {
		return transparentMask
	}
	return opaqueMask
}

func rectMask(box image.Rectangle) shapeMask {
	return shapeMask{bounds: box, contains: func(x, y int) bool { return true }}
}

func ellipseMask(box image.Rectangle) shapeMask {
	box = layout.Normalize(box)
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	rx := float64(box.Dx()) / 2
	ry := float64(box.Dy()) / 2
	return shapeMask{
		bounds: box,
		contains: func(x, y int) bool {
			if rx <= 0 || ry <= 0 {
				return false
			}
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			return dx*dx+dy*dy <= 1
		},
	}
}

func roundedRectMask(box image.Rectangle, radius int) shapeMask {
	box = layout.Normalize(box)
	radius = clampRadius(box, radius)
	r := float64(radius)
	return shapeMask{
		bounds: box,
		contains: func(x, y int) bool {
			if radius == 0 {
				return true
			}
			cx, inCornerX := cornerCenter(x, box.Min.X, box.Max.X, radius)
			cy, inCornerY := cornerCenter(y, box.Min.Y, box.Max.Y, radius)
			if !inCornerX || !inCornerY {
				return true
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			return dx*dx+dy*dy <= r*r
		},
	}
}

// ringMask covers outer minus inner.
func ringMask(outer, inner shapeMask) shapeMask {
	return shapeMask{
		bounds: outer.bounds,
		contains: func(x, y int) bool {
			if !outer.contains(x, y) {
				return false
			}
			return !image.Pt(x, y).In(inner.bounds) || !inner.contains(x, y)
		},
	}
}

// cornerCenter returns the arc center coordinate along one axis when v falls
// into a corner band of width radius.
func cornerCenter(v, lo, hi, radius int) (float64, bool) {
	switch {
	case v < lo+radius:
		return float64(lo + radius), true
	case v >= hi-radius:
		return float64(hi - radius), true
	}
	return 0, false
}

func clampRadius(box image.Rectangle, radius int) int {
	if radius < 0 {
		return 0
	}
	limit := box.Dx() / 2
	if box.Dy()/2 < limit {
		limit = box.Dy() / 2
	}
	if radius > limit {
		return limit
	}
	return radius
}
