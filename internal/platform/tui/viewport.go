package tui

import (
	"math"

	"github.com/vovakirdan/money-grabber/internal/core"
)

// Screen layout: one HUD row, the bordered field, one help row.
const (
	hudRows     = 1
	footerRows  = 1
	minScreenW  = 24
	minScreenH  = 10
	borderWidth = 1
)

// Viewport maps world coordinates onto a rectangle of terminal cells.
type Viewport struct {
	Cells  core.Rect   // Field interior in screen cells
	Bounds core.Bounds // Field size in world units
}

// NewViewport lays out the field for a screen of the given size.
func NewViewport(screenW, screenH int, bounds core.Bounds) Viewport {
	w := screenW - 2*borderWidth
	h := screenH - hudRows - footerRows - 2*borderWidth
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Viewport{
		Cells:  core.NewRect(borderWidth, hudRows+borderWidth, w, h),
		Bounds: bounds,
	}
}

// Frame returns the field rectangle including its border.
func (v Viewport) Frame() core.Rect {
	return core.NewRect(v.Cells.X-borderWidth, v.Cells.Y-borderWidth,
		v.Cells.W+2*borderWidth, v.Cells.H+2*borderWidth)
}

// CellSize returns the world size of one cell.
func (v Viewport) CellSize() core.Vec2 {
	return core.V(v.Bounds.W/float64(v.Cells.W), v.Bounds.H/float64(v.Cells.H))
}

// ToCell returns the screen cell containing world point p.
// Points outside the field are clamped to its edge.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	size := v.CellSize()
	cx := int(math.Floor(p.X / size.X))
	cy := int(math.Floor(p.Y / size.Y))
	cx = core.Clamp(cx, 0, v.Cells.W-1)
	cy = core.Clamp(cy, 0, v.Cells.H-1)
	return v.Cells.X + cx, v.Cells.Y + cy
}

// ToWorld returns the world point at the centre of screen cell (x, y).
// Cells outside the field map to points outside the world bounds.
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	size := v.CellSize()
	return core.V(
		(float64(x-v.Cells.X)+0.5)*size.X,
		(float64(y-v.Cells.Y)+0.5)*size.Y,
	)
}

// ContainsCell reports whether (x, y) is inside the field interior.
func (v Viewport) ContainsCell(x, y int) bool {
	return v.Cells.Contains(x, y)
}

// ClampCell keeps (x, y) inside the field interior.
func (v Viewport) ClampCell(x, y int) (int, int) {
	return core.Clamp(x, v.Cells.X, v.Cells.Right()-1), core.Clamp(y, v.Cells.Y, v.Cells.Bottom()-1)
}
