package core

// RuntimeConfig carries per-run settings that are not tuning parameters.
type RuntimeConfig struct {
	ScreenW int    // Presentation width (cells or pixels, depending on the front end)
	ScreenH int    // Presentation height
	Seed    int64  // RNG seed for segment heights; 0 means time-based
	Theme   string // Cosmetic variant ID
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
		Theme:   "neon",
	}
}
