package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - paddle up, rotate piece
	ActionDown           // S, Down arrow - paddle down, soft drop
	ActionLeft           // A, Left arrow - shift piece left
	ActionRight          // D, Right arrow - shift piece right
	ActionRotate         // X, Z - rotate piece clockwise
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q - exit game
	ActionPause          // P, Escape - pause/unpause game

	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRotate:  "Rotate",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the input snapshot for one simulation tick.
//
// It distinguishes two views of the same keys: an action is "pressed" only
// on the tick its key went down, and "held" on every tick the key stays
// down. Discrete commands (move, rotate, restart) read Has; continuous ones
// (soft drop, paddles) read Held.
type InputFrame struct {
	// Actions holds the actions pressed this tick.
	Actions map[Action]bool

	held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this tick. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.SetHeld(a)
}

// SetHeld marks an action as held without a fresh press.
func (f *InputFrame) SetHeld(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Has returns true if the given action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Held returns true if the action's key is down during this tick.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.held {
		c.held[k] = v
	}
	return c
}

// KeyTracker turns a stream of key-press events into per-tick InputFrames.
//
// Terminals deliver key presses (plus auto-repeat) but never releases, so a
// key counts as held while its last event is younger than the hold window.
// A press is reported once when a key goes from released to held; repeat
// events that arrive while it is still held only extend the window.
//
// Auto-repeat starts only after the terminal's repeat delay, so a fresh press
// stays held for the longer delay window. Once the first repeat event arrives
// the key falls back to the short hold window.
type KeyTracker struct {
	holdTicks  int
	delayTicks int
	tick       int
	lastSeen   map[Action]int
	down       map[Action]bool
	repeating  map[Action]bool
	pending    map[Action]bool
}

const (
	// DefaultHoldTicks covers a typical terminal auto-repeat interval at 60 ticks/s.
	DefaultHoldTicks = 6

	// DefaultRepeatDelayTicks covers a typical terminal delay before
	// auto-repeat starts (about 500ms at 60 ticks/s).
	DefaultRepeatDelayTicks = 30
)

// NewKeyTracker creates a tracker with the given hold and repeat-delay
// windows in ticks. Non-positive values select the defaults. The delay
// window is never shorter than the hold window.
func NewKeyTracker(holdTicks, delayTicks int) *KeyTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	if delayTicks <= 0 {
		delayTicks = DefaultRepeatDelayTicks
	}
	return &KeyTracker{
		holdTicks:  holdTicks,
		delayTicks: max(delayTicks, holdTicks),
		lastSeen:   make(map[Action]int),
		down:       make(map[Action]bool),
		repeating:  make(map[Action]bool),
		pending:    make(map[Action]bool),
	}
}

// Observe records a key event for the action at the current tick.
func (k *KeyTracker) Observe(a Action) {
	if a == ActionNone {
		return
	}
	if k.down[a] {
		k.repeating[a] = true
	}
	k.lastSeen[a] = k.tick
	k.pending[a] = true
}

// Frame builds the InputFrame for the current tick and advances the clock.
func (k *KeyTracker) Frame() InputFrame {
	frame := NewInputFrame()

	for a, seen := range k.lastSeen {
		window := k.delayTicks
		if k.repeating[a] {
			window = k.holdTicks
		}
		if k.tick-seen >= window {
			delete(k.lastSeen, a)
			delete(k.down, a)
			delete(k.repeating, a)
			continue
		}
		if k.pending[a] && !k.down[a] {
			frame.Set(a)
		} else {
			frame.SetHeld(a)
		}
		k.down[a] = true
	}

	clear(k.pending)
	k.tick++
	return frame
}

// Reset forgets all key state.
func (k *KeyTracker) Reset() {
	clear(k.lastSeen)
	clear(k.down)
	clear(k.repeating)
	clear(k.pending)
}
