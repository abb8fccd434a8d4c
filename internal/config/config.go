// Package config provides YAML-based configuration loading for the
// simulated Simon hardware and its host shell.
package config

// SimonConfig contains all configuration for the Simon game.
type SimonConfig struct {
	Clock   ClockConfig   `yaml:"clock"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
}

// ClockConfig defines the simulated clock.
type ClockConfig struct {
	// TicksPerMilli is the number of circuit ticks per simulated
	// millisecond. The reference board runs at 50 (a 50 kHz clock).
	TicksPerMilli uint16 `yaml:"ticks_per_milli"`
}

// DisplayConfig defines the seven-segment wiring.
type DisplayConfig struct {
	// SegmentInvert flips the segment and digit select polarity for
	// common-anode displays.
	SegmentInvert bool `yaml:"segment_invert"`
}

// AudioConfig defines host audio output.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// InputConfig defines how terminal key presses map onto the button pins.
type InputConfig struct {
	// HoldMillis is how long a key press keeps its button line asserted,
	// in simulated milliseconds. Terminals report presses but not
	// releases, so every press becomes a fixed-length pulse.
	HoldMillis int `yaml:"hold_millis"`
}
