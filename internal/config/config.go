// Package config provides YAML-based tuning configuration for the flyer
// simulation: loop pacing, flyer physics and skyline scrolling.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all tunable parameters of the game.
type Config struct {
	Loop     LoopConfig     `yaml:"loop"`
	Flyer    FlyerConfig    `yaml:"flyer"`
	Scroller ScrollerConfig `yaml:"scroller"`
}

// LoopConfig defines frame pacing of the simulation loop.
type LoopConfig struct {
	TargetFPS   int     `yaml:"target_fps"`   // Frames faster than 1000/TargetFPS ms are skipped
	RefreshRate int     `yaml:"refresh_rate"` // How often front ends invoke the loop (Hz)
	MaxStep     float64 `yaml:"max_step"`     // Upper bound on a single step, seconds
}

// FlyerConfig defines physics and idle animation of the flyer.
type FlyerConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration, units/s²
	Impulse       float64 `yaml:"impulse"`        // Upward velocity set by a jump, units/s
	Floor         float64 `yaml:"floor"`          // Lowest position; touching it ends the round
	Ceiling       float64 `yaml:"ceiling"`        // Highest position; clamps only
	IdleAmplitude float64 `yaml:"idle_amplitude"` // Hover bob height while ready
	IdleSpeed     float64 `yaml:"idle_speed"`     // Hover bob angular speed, rad/s
	BankRoll      float64 `yaml:"bank_roll"`      // Roll per unit of vertical velocity
	BankPitch     float64 `yaml:"bank_pitch"`     // Pitch per unit of vertical velocity
}

// ScrollerConfig defines the scrolling skyline.
type ScrollerConfig struct {
	SegmentCount     int     `yaml:"segment_count"`
	Spacing          float64 `yaml:"spacing"`
	Speed            float64 `yaml:"speed"`             // Units per second toward the viewer
	RecycleThreshold float64 `yaml:"recycle_threshold"` // World X below which a segment wraps around
	MinHeight        float64 `yaml:"min_height"`
	MaxHeight        float64 `yaml:"max_height"`
	RerollOnRecycle  bool    `yaml:"reroll_on_recycle"`
	ScoreLine        float64 `yaml:"score_line"` // World X of the flyer; passing it scores
	PointsPerSegment int     `yaml:"points_per_segment"`
}

// FrameDuration returns the minimum time between two simulation steps in milliseconds.
func (c LoopConfig) FrameDuration() float64 {
	return 1000.0 / float64(c.TargetFPS)
}

// TotalSpan returns the width covered by all segments.
func (c ScrollerConfig) TotalSpan() float64 {
	return float64(c.SegmentCount) * c.Spacing
}

// Validate reports the first parameter that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.Loop.TargetFPS <= 0:
		return fmt.Errorf("%w: loop.target_fps must be positive, got %d", ErrInvalid, c.Loop.TargetFPS)
	case c.Loop.RefreshRate <= 0:
		return fmt.Errorf("%w: loop.refresh_rate must be positive, got %d", ErrInvalid, c.Loop.RefreshRate)
	case c.Loop.MaxStep <= 0:
		return fmt.Errorf("%w: loop.max_step must be positive, got %g", ErrInvalid, c.Loop.MaxStep)
	case c.Flyer.Gravity <= 0:
		return fmt.Errorf("%w: flyer.gravity must be positive, got %g", ErrInvalid, c.Flyer.Gravity)
	case c.Flyer.Impulse <= 0:
		return fmt.Errorf("%w: flyer.impulse must be positive, got %g", ErrInvalid, c.Flyer.Impulse)
	case c.Flyer.Floor >= c.Flyer.Ceiling:
		return fmt.Errorf("%w: flyer.floor (%g) must be below flyer.ceiling (%g)", ErrInvalid, c.Flyer.Floor, c.Flyer.Ceiling)
	case c.Scroller.SegmentCount <= 0:
		return fmt.Errorf("%w: scroller.segment_count must be positive, got %d", ErrInvalid, c.Scroller.SegmentCount)
	case c.Scroller.Spacing <= 0:
		return fmt.Errorf("%w: scroller.spacing must be positive, got %g", ErrInvalid, c.Scroller.Spacing)
	case c.Scroller.Speed <= 0:
		return fmt.Errorf("%w: scroller.speed must be positive, got %g", ErrInvalid, c.Scroller.Speed)
	case c.Scroller.RecycleThreshold >= 0:
		return fmt.Errorf("%w: scroller.recycle_threshold must be negative, got %g", ErrInvalid, c.Scroller.RecycleThreshold)
	case c.Scroller.MaxHeight < c.Scroller.MinHeight:
		return fmt.Errorf("%w: scroller.max_height (%g) below min_height (%g)", ErrInvalid, c.Scroller.MaxHeight, c.Scroller.MinHeight)
	case c.Scroller.PointsPerSegment < 0:
		return fmt.Errorf("%w: scroller.points_per_segment must not be negative", ErrInvalid)
	}
	return nil
}
