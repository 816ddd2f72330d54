package game

// FlyerPose is the flyer's transform for one frame.
type FlyerPose struct {
	Y     float64
	Roll  float64
	Pitch float64
}

// SegmentView is one skyline segment in world space.
type SegmentView struct {
	Index  int // Stable across recycling; themes use it to pick colors
	WorldX float64
	Height float64
}

// Frame is everything a presenter needs to draw one tick.
// Segments is reused between frames: copy it to keep it past Render.
type Frame struct {
	Flyer    FlyerPose
	Segments []SegmentView
	Origin   float64
	Status   Status
	Elapsed  float64 // Seconds since the loop started
}

// Presenter draws frames. Render is called exactly once per simulation step.
type Presenter interface {
	Render(Frame)
}

// Resizer is implemented by presenters that care about viewport changes.
type Resizer interface {
	Resize(width, height int)
}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc func(Frame)

// Render calls f(fr).
func (f PresenterFunc) Render(fr Frame) { f(fr) }
