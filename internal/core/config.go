package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to set up the simulated clock.
type RuntimeConfig struct {
	ScreenW       int    // Screen width in characters
	ScreenH       int    // Screen height in characters
	TickRate      int    // Host frames per second (default 60)
	TicksPerMilli uint16 // Simulated circuit ticks per millisecond
	SegInvert     bool   // Seven-segment polarity (common-anode wiring)
	HoldMillis    int    // Simulated hold duration of a key press
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		TicksPerMilli: 50,
		HoldMillis:    150,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Phase    string // Human-readable phase for the HUD
	ToneHz   int    // Frequency the game wants audible right now, 0 = silent
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State GameState
}
