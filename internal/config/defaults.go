package config

import (
	_ "embed"
)

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/flyer.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Loop: LoopConfig{
			TargetFPS:   60,
			RefreshRate: 120,
			MaxStep:     0.25,
		},
		Flyer: FlyerConfig{
			Gravity:       15,
			Impulse:       5,
			Floor:         -3,
			Ceiling:       8,
			IdleAmplitude: 0.1,
			IdleSpeed:     2,
			BankRoll:      0.1,
			BankPitch:     0.05,
		},
		Scroller: ScrollerConfig{
			SegmentCount:     10,
			Spacing:          4,
			Speed:            5,
			RecycleThreshold: -20,
			MinHeight:        2,
			MaxHeight:        7,
			RerollOnRecycle:  true,
			ScoreLine:        0,
			PointsPerSegment: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlyerYAML
}
