package game

import (
	"math/rand"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
)

// Segment is one recyclable piece of skyline.
type Segment struct {
	OffsetX float64 // Position relative to the scroller's origin
	Height  float64 // Visual height only; never collides
}

// Scroller moves a fixed ring of segments toward the viewer and wraps
// each one back to the far edge once it leaves the visible corridor.
type Scroller struct {
	cfg      config.ScrollerConfig
	rng      *rand.Rand
	segments []Segment
	origin   float64 // Shared translation of every segment
	span     float64 // SegmentCount * Spacing
	maxStep  float64 // Largest dt that moves at most one spacing
}

// NewScroller creates the segments once, laid out evenly around x=0
// with heights drawn from the seeded RNG.
func NewScroller(cfg config.ScrollerConfig, seed int64) *Scroller {
	s := &Scroller{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		segments: make([]Segment, cfg.SegmentCount),
		span:     cfg.TotalSpan(),
		maxStep:  cfg.Spacing / cfg.Speed,
	}
	for i := range s.segments {
		s.segments[i] = Segment{
			OffsetX: s.initialOffset(i),
			Height:  s.rollHeight(),
		}
	}
	return s
}

// Origin returns the shared scroll origin.
func (s *Scroller) Origin() float64 {
	return s.origin
}

// TotalSpan returns the width covered by all segments.
func (s *Scroller) TotalSpan() float64 {
	return s.span
}

// Segments returns the segments. The slice is owned by the scroller.
func (s *Scroller) Segments() []Segment {
	return s.segments
}

// WorldX returns the world-space position of segment i.
func (s *Scroller) WorldX(i int) float64 {
	return s.segments[i].OffsetX + s.origin
}

// Reset restores the origin and the initial layout. Heights are kept.
func (s *Scroller) Reset() {
	s.origin = 0
	for i := range s.segments {
		s.segments[i].OffsetX = s.initialOffset(i)
	}
}

// Update scrolls by speed*dt and returns how many segments crossed the
// score line during this step.
//
// dt is clamped to [0, spacing/speed]: a larger step could carry a segment
// past the recycle threshold and the score line more than once.
func (s *Scroller) Update(dt float64) (passed int) {
	dt = core.ClampF(dt, 0, s.maxStep)
	step := s.cfg.Speed * dt
	line := s.cfg.ScoreLine

	s.origin -= step

	for i := range s.segments {
		seg := &s.segments[i]
		worldX := seg.OffsetX + s.origin
		if worldX < line && worldX+step >= line {
			passed++
		}
		if worldX < s.cfg.RecycleThreshold {
			seg.OffsetX += s.span
			if s.cfg.RerollOnRecycle {
				seg.Height = s.rollHeight()
			}
		}
	}

	// Fold the origin back to keep magnitudes small; offsets move the
	// other way so no world position changes
	if s.origin < -s.span {
		s.origin += s.span
		for i := range s.segments {
			s.segments[i].OffsetX -= s.span
		}
	}

	return passed
}

// initialOffset centers the ring on x=0, wrapped into the recycle
// corridor [threshold, threshold+span] so the bound holds from the start.
func (s *Scroller) initialOffset(i int) float64 {
	x := float64(i)*s.cfg.Spacing - s.span/2
	for x < s.cfg.RecycleThreshold {
		x += s.span
	}
	for x > s.cfg.RecycleThreshold+s.span {
		x -= s.span
	}
	return x
}

func (s *Scroller) rollHeight() float64 {
	return core.Lerp(s.cfg.MinHeight, s.cfg.MaxHeight, s.rng.Float64())
}
