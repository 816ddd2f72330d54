package core

import "testing"

func TestRectCentered(t *testing.T) {
	got := NewRect(0, 0, 80, 24).Centered(20, 6)
	want := NewRect(30, 9, 20, 6)
	if got != want {
		t.Errorf("Centered() = %+v, expected %+v", got, want)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.1, 0, 1, 0},
		{3, 0, 1, 1},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%g, %g, %g) = %g, expected %g", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 7, 0); got != 2 {
		t.Errorf("Lerp(2, 7, 0) = %g, expected 2", got)
	}
	if got := Lerp(2, 7, 1); got != 7 {
		t.Errorf("Lerp(2, 7, 1) = %g, expected 7", got)
	}
	if got := Lerp(2, 7, 0.5); got != 4.5 {
		t.Errorf("Lerp(2, 7, 0.5) = %g, expected 4.5", got)
	}
}

func TestViewportCell(t *testing.T) {
	v := Viewport{MinX: -20, MaxX: 20, MinY: -4, MaxY: 8, Cols: 80, Rows: 24}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"top-left", -20, 8, 0, 0},
		{"center x, baseline", 0, 0, 40, 16},
		{"just inside bottom-right", 19.99, -3.99, 79, 23},
		{"left of view", -21, 8, -2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := v.Cell(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("Cell(%g, %g) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestColorRGB(t *testing.T) {
	if r, g, b := ColorBrightWhite.RGB(); r != 0xff || g != 0xff || b != 0xff {
		t.Errorf("BrightWhite.RGB() = (%d, %d, %d), expected white", r, g, b)
	}
	// 208 is the cube entry (5, 2, 0)
	if r, g, b := ColorOrange.RGB(); r != 255 || g != 135 || b != 0 {
		t.Errorf("Orange.RGB() = (%d, %d, %d), expected (255, 135, 0)", r, g, b)
	}
}
