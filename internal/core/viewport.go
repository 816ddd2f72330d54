package core

// Viewport maps the simulation's world coordinates (x grows right,
// y grows up) onto a grid of Cols×Rows cells or pixels (y grows down).
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Cols, Rows int
}

// ScaleX returns grid units per world unit horizontally.
func (v Viewport) ScaleX() float64 {
	return float64(v.Cols) / (v.MaxX - v.MinX)
}

// ScaleY returns grid units per world unit vertically.
func (v Viewport) ScaleY() float64 {
	return float64(v.Rows) / (v.MaxY - v.MinY)
}

// Project converts a world point to fractional grid coordinates.
func (v Viewport) Project(x, y float64) (float64, float64) {
	return (x - v.MinX) * v.ScaleX(), (v.MaxY - y) * v.ScaleY()
}

// Cell converts a world point to the grid cell containing it.
// The result may lie outside the grid.
func (v Viewport) Cell(x, y float64) (int, int) {
	px, py := v.Project(x, y)
	return floorInt(px), floorInt(py)
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
