package layout

import "image"

// Box converts an inclusive bounding box [x0,y0,x1,y1] into a half-open
// image.Rectangle, so Box(0,0,0,0) covers exactly one pixel.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	rect := Normalize(image.Rect(x0, y0, x1, y1))
	rect.Max.X++
	rect.Max.Y++
	return rect
}

// Inset shrinks rect by paddingPx on all sides.
// The result collapses to an empty rectangle at rect's center when the
// padding exceeds half of either dimension.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	rect = Normalize(rect)
	minX, minY := rect.Min.X+paddingPx, rect.Min.Y+paddingPx
	maxX, maxY := rect.Max.X-paddingPx, rect.Max.Y-paddingPx
	// image.Rect would swap inverted corners, so build the literal directly.
	if minX > maxX || minY > maxY {
		center := image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
		return image.Rectangle{Min: center, Max: center}
	}
	return image.Rectangle{Min: image.Pt(minX, minY), Max: image.Pt(maxX, maxY)}
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}
