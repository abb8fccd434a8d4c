package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Clock: ClockConfig{
			TicksPerMilli: 50,
		},
		Display: DisplayConfig{
			SegmentInvert: false,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 48000,
		},
		Input: InputConfig{
			HoldMillis: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSimonYAML
}
