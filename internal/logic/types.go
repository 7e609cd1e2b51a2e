// Package logic contains the pure core of the square timer: the interval table,
// the mode state machine, the input dispatcher and the frame renderers.
// This package has NO hardware dependencies (no GPIO, SPI, files or time.Sleep).
// Time is always injectable as a uint32 millisecond sample.
package logic

// NumCells is the number of light cells on the strip.
const NumCells = 5

// RGB is a single cell color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Frame is a full strip worth of colors, overwritten on every render.
type Frame [NumCells]RGB

// Interval describes the scheduled behavior of one cell.
type Interval struct {
	Color RGB
	// Start and End bound the fade window in countdown milliseconds.
	Start uint32
	End   uint32
	// Notify is the time the warning pulse begins. Zero means no pulse.
	Notify uint32
}

// HasNotify reports whether the interval carries a warning pulse.
func (iv Interval) HasNotify() bool {
	return iv.Notify != 0
}

// Mode is the active top-level behavior of the timer.
type Mode string

const (
	ModeCountDown     Mode = "COUNT_DOWN"
	ModeConfiguration Mode = "CONFIGURATION"
	ModeIdle          Mode = "IDLE_ANIMATION"
)

// Field is the configuration value currently being edited.
type Field string

const (
	FieldBrightness Field = "BRIGHTNESS"
	FieldPattern    Field = "PATTERN"
)

// Settings holds the persisted user selections.
// Both values are indices into BrightnessLevels and Patterns.
type Settings struct {
	Brightness uint8
	Pattern    uint8
}

// Normalize replaces out-of-range indices with 0.
func (s Settings) Normalize() Settings {
	if int(s.Brightness) >= len(BrightnessLevels) {
		s.Brightness = 0
	}
	if int(s.Pattern) >= len(Patterns) {
		s.Pattern = 0
	}
	return s
}

// BrightnessLevel returns the global brightness for the selected index.
func (s Settings) BrightnessLevel() uint8 {
	return BrightnessLevels[s.Normalize().Brightness]
}

// EventType names a state change the daemon may need to act on.
type EventType string

const (
	EventModeChanged       EventType = "MODE_CHANGED"
	EventFieldChanged      EventType = "FIELD_CHANGED"
	EventBrightnessChanged EventType = "BRIGHTNESS_CHANGED"
	EventPatternChanged    EventType = "PATTERN_CHANGED"
)

// Event is emitted by the timer whenever its state changes.
type Event struct {
	Type  EventType
	Time  uint32
	From  Mode
	To    Mode
	Field Field
	// Value is the new index for brightness and pattern events.
	Value uint8
}

// Button is the debounced input the dispatcher consumes.
// Edge predicates are only valid for the tick in which they were sampled.
type Button interface {
	WasPressed() bool
	WasReleased() bool
	PressedFor(ms uint32) bool
}
