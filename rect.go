package rendergrid

import "image"

// Rect is an axis-aligned output-space rectangle: top, left, bottom, right
// in grid coordinates, right/bottom exclusive. It is a thin wrapper around
// image.Rectangle, which already implements the "may yield an empty
// rectangle" intersection semantics clipping needs.
type Rect struct {
	r image.Rectangle
}

// NewRect builds a Rect from top/left/bottom/right (bottom and right
// exclusive), in line/col order.
func NewRect(top, left, bottom, right int) Rect {
	return Rect{r: image.Rect(left, top, right, bottom)}
}

func (r Rect) Top() int    { return r.r.Min.Y }
func (r Rect) Left() int   { return r.r.Min.X }
func (r Rect) Bottom() int { return r.r.Max.Y }
func (r Rect) Right() int  { return r.r.Max.X }

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool {
	return r.r.Empty()
}

// Intersect returns the overlap of r and other. The result is Empty() if
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{r: r.r.Intersect(other.r)}
}

// Translate shifts the rectangle by (dLine, dCol).
func (r Rect) Translate(dLine, dCol int) Rect {
	return Rect{r: r.r.Add(image.Pt(dCol, dLine))}
}

// Contains reports whether (line, col) falls within the rectangle.
func (r Rect) Contains(line, col int) bool {
	return r.r.Min.X <= col && col < r.r.Max.X && r.r.Min.Y <= line && line < r.r.Max.Y
}
