package render

import (
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/vmath"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide, so the field renders with its true proportions
const cellAspect = 2.0

// Viewport maps world coordinates (origin center, y up) to terminal
// cells and back. The playfield is centered in the terminal below the
// score row; the inverse transform is the paddle controller's pointer
// unprojection
type Viewport struct {
	screenW, screenH int

	// Playfield area in cells
	originX, originY int
	cellsW, cellsH   int
}

func NewViewport(screenW, screenH int) *Viewport {
	v := &Viewport{}
	v.Resize(screenW, screenH)
	return v
}

// Resize fits the largest aspect-correct playfield into the terminal,
// reserving the top row for the score and one cell of border all around
func (v *Viewport) Resize(screenW, screenH int) {
	v.screenW = screenW
	v.screenH = screenH

	availW := screenW - 2
	availH := screenH - 3 // score row + top/bottom border
	if availW < 4 {
		availW = 4
	}
	if availH < 2 {
		availH = 2
	}

	// Cell dimensions honoring world aspect corrected for cell shape
	ratio := parameter.FieldWidth / parameter.FieldHeight * cellAspect
	w := availW
	h := int(float64(w) / ratio)
	if h > availH {
		h = availH
		w = int(float64(h) * ratio)
	}
	if w < 4 {
		w = 4
	}
	if h < 2 {
		h = 2
	}

	v.cellsW = w
	v.cellsH = h
	v.originX = (screenW - w) / 2
	v.originY = 2 + (availH-h)/2
}

// WorldToScreen converts a world position to the containing cell
func (v *Viewport) WorldToScreen(p vmath.Vec2) (int, int) {
	x := v.originX + int((p.X+parameter.FieldWidth/2)/parameter.FieldWidth*float64(v.cellsW))
	y := v.originY + int((parameter.FieldHeight/2-p.Y)/parameter.FieldHeight*float64(v.cellsH))
	return x, y
}

// ScreenToWorld converts a cell to the world position at its center
// Reports false when the cell lies outside the playfield area
func (v *Viewport) ScreenToWorld(x, y int) (vmath.Vec2, bool) {
	if x < v.originX || x >= v.originX+v.cellsW ||
		y < v.originY || y >= v.originY+v.cellsH {
		return vmath.Vec2{}, false
	}
	wx := (float64(x-v.originX)+0.5)/float64(v.cellsW)*parameter.FieldWidth - parameter.FieldWidth/2
	wy := parameter.FieldHeight/2 - (float64(y-v.originY)+0.5)/float64(v.cellsH)*parameter.FieldHeight
	return vmath.Vec2{X: wx, Y: wy}, true
}

// Bounds returns the playfield area in cells: origin and size
func (v *Viewport) Bounds() (int, int, int, int) {
	return v.originX, v.originY, v.cellsW, v.cellsH
}

// CellsPerWorldY returns the vertical cell count covering a world height
func (v *Viewport) CellsPerWorldY(worldH float64) int {
	n := int(worldH / parameter.FieldHeight * float64(v.cellsH))
	if n < 1 {
		n = 1
	}
	return n
}
