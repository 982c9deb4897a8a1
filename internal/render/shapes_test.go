package render

import (
	"image"
	"testing"

	"github.com/rook-computer/favicon/internal/render/layout"
)

func covered(m shapeMask, x, y int) bool {
	return m.At(x, y) == opaqueMask
}

func TestEllipseMask(t *testing.T) {
	mask := ellipseMask(layout.Box(0, 0, 128, 128))
	tests := []struct {
		x, y int
		want bool
	}{
		{64, 64, true},
		{0, 64, true},
		{64, 0, true},
		{2, 2, false},
		{127, 127, false},
		{-1, 64, false},
	}
	for _, tt := range tests {
		if got := covered(mask, tt.x, tt.y); got != tt.want {
			t.Errorf("ellipse covers (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEllipseMaskDegenerate(t *testing.T) {
	mask := ellipseMask(image.Rect(5, 5, 5, 9))
	for y := 0; y < 12; y++ {
		if covered(mask, 5, y) {
			t.Fatalf("zero-width ellipse covers (5,%d)", y)
		}
	}
}

func TestRoundedRectMaskCorners(t *testing.T) {
	mask := roundedRectMask(layout.Box(36, 54, 92, 102), 3)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner cut", 36, 54, false},
		{"top-right corner cut", 92, 54, false},
		{"bottom-left corner cut", 36, 102, false},
		{"bottom-right corner cut", 92, 102, false},
		{"inside arc", 38, 56, true},
		{"edge middle", 36, 80, true},
		{"top edge", 64, 54, true},
		{"outside box", 93, 80, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := covered(mask, tt.x, tt.y); got != tt.want {
				t.Errorf("covers (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRoundedRectMaskSymmetric(t *testing.T) {
	box := layout.Box(10, 10, 29, 25)
	mask := roundedRectMask(box, 5)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			mx := box.Min.X + box.Max.X - 1 - x
			my := box.Min.Y + box.Max.Y - 1 - y
			if covered(mask, x, y) != covered(mask, mx, my) {
				t.Fatalf("asymmetric coverage at (%d,%d) vs (%d,%d)", x, y, mx, my)
			}
		}
	}
}

func TestClampRadius(t *testing.T) {
	box := image.Rect(0, 0, 10, 6)
	tests := []struct{ in, want int }{
		{-2, 0},
		{0, 0},
		{2, 2},
		{9, 3},
	}
	for _, tt := range tests {
		if got := clampRadius(box, tt.in); got != tt.want {
			t.Errorf("clampRadius(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRingMask(t *testing.T) {
	outer := rectMask(image.Rect(0, 0, 10, 10))
	inner := rectMask(layout.Inset(outer.Bounds(), 2))
	ring := ringMask(outer, inner)
	if !covered(ring, 0, 0) || !covered(ring, 1, 5) {
		t.Error("ring should cover the 2px border")
	}
	if covered(ring, 2, 2) || covered(ring, 5, 5) {
		t.Error("ring should not cover the interior")
	}
	if covered(ring, 10, 5) {
		t.Error("ring should not extend past the outer bounds")
	}
}
