package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HoldTicks is how long a key counts as held after its last event.
	// Zero selects DefaultHoldTicks.
	HoldTicks int

	// RepeatDelayTicks is how long a fresh press counts as held while the
	// terminal waits to start auto-repeat. Zero selects DefaultRepeatDelayTicks.
	RepeatDelayTicks int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		HoldTicks: DefaultHoldTicks,

		RepeatDelayTicks: DefaultRepeatDelayTicks,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Quit is set when the player asked to leave during this tick.
	// The platform ends the program; games keep their state untouched.
	Quit bool
}
