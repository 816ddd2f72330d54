package game

import (
	"math"

	"github.com/vovakirdan/neon-flyer/internal/config"
)

// Flyer is the player-controlled body. It only moves vertically; the
// world scrolls past it.
type Flyer struct {
	cfg   config.FlyerConfig
	y     float64 // Offset from the baseline, clamped to [Floor, Ceiling]
	vy    float64 // Vertical velocity, positive = up
	roll  float64 // Banking around the forward axis
	pitch float64 // Nose up/down
	// grounded latches a floor crossing so game-over is signalled once
	grounded bool
}

// NewFlyer creates a flyer at rest on the baseline.
func NewFlyer(cfg config.FlyerConfig) *Flyer {
	return &Flyer{cfg: cfg}
}

// Y returns the vertical position.
func (f *Flyer) Y() float64 { return f.y }

// VelocityY returns the vertical velocity.
func (f *Flyer) VelocityY() float64 { return f.vy }

// Roll returns the banking angle derived from velocity.
func (f *Flyer) Roll() float64 { return f.roll }

// Pitch returns the pitch angle derived from velocity.
func (f *Flyer) Pitch() float64 { return f.pitch }

// Jump sets the vertical velocity to the impulse magnitude.
func (f *Flyer) Jump() {
	f.vy = f.cfg.Impulse
}

// Reset puts the flyer back at rest on the baseline with no rotation.
func (f *Flyer) Reset() {
	f.y = 0
	f.vy = 0
	f.roll = 0
	f.pitch = 0
	f.grounded = false
}

// Update advances the flyer by dt seconds in the given phase.
// It returns true exactly once per floor crossing while playing; the
// caller turns that into a game-over transition.
func (f *Flyer) Update(dt, elapsed float64, phase Phase) (crashed bool) {
	if dt < 0 {
		dt = 0
	}

	switch phase {
	case PhasePlaying:
		f.vy -= f.cfg.Gravity * dt
		f.y += f.vy * dt

		if f.y < f.cfg.Floor {
			f.y = f.cfg.Floor
			f.vy = 0
			crashed = !f.grounded
			f.grounded = true
		} else {
			f.grounded = false
			if f.y > f.cfg.Ceiling {
				f.y = f.cfg.Ceiling
				f.vy = 0
			}
		}

	case PhaseReady:
		// Scripted hover: no velocity carries into the round
		f.y = math.Sin(elapsed*f.cfg.IdleSpeed) * f.cfg.IdleAmplitude

	default:
		return false
	}

	f.roll = -f.vy * f.cfg.BankRoll
	f.pitch = f.vy * f.cfg.BankPitch
	return crashed
}
