package logic

import (
	"math"
	"math/rand"
)

// Timer owns the mode state machine, the input dispatcher state and the
// idle-pattern continuation state. It is driven by one Process and one
// Render call per loop iteration and is not safe for concurrent use.
type Timer struct {
	cfg      Config
	squares  [NumCells]Interval
	mode     Mode
	field    Field
	settings Settings

	countOrigin  uint32
	configOrigin uint32

	// handled is set when a hold fires an action and cleared on release.
	handled bool
	// medium records that the current hold reached MediumPress.
	medium bool

	patterns   []Pattern
	countGate  Gate
	configGate Gate
	idleGate   Gate
}

// NewTimer creates a timer in countdown mode with its origin at now.
// Out-of-range settings are normalized to 0.
func NewTimer(cfg Config, s Settings, rnd *rand.Rand, now uint32) *Timer {
	if cfg.TimeScale == 0 {
		cfg.TimeScale = 1
	}
	t := &Timer{
		cfg:         cfg,
		squares:     Squares,
		mode:        ModeCountDown,
		field:       FieldBrightness,
		settings:    s.Normalize(),
		countOrigin: now,
		countGate:   Gate{Period: cfg.CountDownPeriod},
		configGate:  Gate{Period: cfg.ConfigPeriod},
	}
	for _, p := range Patterns {
		t.patterns = append(t.patterns, p.New(rnd))
	}
	return t
}

// Process runs one input-dispatch tick against the sampled button state, then
// checks the mode timeouts. It returns the events produced by this tick.
func (t *Timer) Process(b Button, now uint32) []Event {
	var events []Event

	switch t.mode {
	case ModeCountDown, ModeIdle:
		if !t.handled && b.PressedFor(t.cfg.LongPress) {
			events = append(events, t.enter(ModeConfiguration, now))
			t.handled = true
		} else if !t.handled && b.WasReleased() {
			// Restarts the countdown even when already counting down.
			events = append(events, t.enter(ModeCountDown, now))
		}

	case ModeConfiguration:
		if b.PressedFor(t.cfg.MediumPress) {
			t.medium = true
		}
		if !t.handled && b.PressedFor(t.cfg.LongPress) {
			events = append(events, t.enter(ModeCountDown, now))
			t.handled = true
		} else if !t.handled && b.WasReleased() {
			if t.medium {
				events = append(events, t.toggleField(now))
			} else {
				events = append(events, t.increment(now))
			}
			t.configOrigin = now
		}
	}

	if b.WasReleased() {
		t.handled = false
		t.medium = false
	}

	if ev, ok := t.checkTimeout(now); ok {
		events = append(events, ev)
	}
	return events
}

func (t *Timer) checkTimeout(now uint32) (Event, bool) {
	switch t.mode {
	case ModeCountDown:
		if t.CountDownElapsed(now) >= t.cfg.IdleTimeout {
			return t.enter(ModeIdle, now), true
		}
	case ModeConfiguration:
		if t.ConfigElapsed(now) >= t.cfg.ConfigTimeout {
			return t.enter(ModeCountDown, now), true
		}
	}
	return Event{}, false
}

// enter switches modes. Countdown and configuration restart their origin;
// the idle animation keeps its continuation state.
func (t *Timer) enter(m Mode, now uint32) Event {
	ev := Event{Type: EventModeChanged, Time: now, From: t.mode, To: m}
	t.mode = m

	switch m {
	case ModeCountDown:
		t.countOrigin = now
		t.countGate.Reset()
	case ModeConfiguration:
		t.configOrigin = now
		t.field = FieldBrightness
		t.configGate.Reset()
	case ModeIdle:
		t.idleGate.Reset()
	}
	return ev
}

func (t *Timer) toggleField(now uint32) Event {
	if t.field == FieldBrightness {
		t.field = FieldPattern
	} else {
		t.field = FieldBrightness
	}
	return Event{Type: EventFieldChanged, Time: now, From: t.mode, To: t.mode, Field: t.field}
}

func (t *Timer) increment(now uint32) Event {
	ev := Event{Time: now, From: t.mode, To: t.mode, Field: t.field}
	switch t.field {
	case FieldPattern:
		t.settings.Pattern = uint8((int(t.settings.Pattern) + 1) % len(Patterns))
		ev.Type = EventPatternChanged
		ev.Value = t.settings.Pattern
	default:
		t.settings.Brightness = uint8((int(t.settings.Brightness) + 1) % len(BrightnessLevels))
		ev.Type = EventBrightnessChanged
		ev.Value = t.settings.Brightness
	}
	return ev
}

// Render returns the frame for the current mode when that mode's frame gate
// is open, and false otherwise.
func (t *Timer) Render(now uint32) (Frame, bool) {
	switch t.mode {
	case ModeCountDown:
		if !t.countGate.Ready(now) {
			return Frame{}, false
		}
		return RenderCountDown(t.squares, t.CountDownElapsed(now), t.cfg.FeedbackPulse), true

	case ModeConfiguration:
		if !t.configGate.Ready(now) {
			return Frame{}, false
		}
		return RenderConfig(t.settings, t.field, t.ConfigElapsed(now), t.cfg.CursorBlink), true

	case ModeIdle:
		i := t.settings.Pattern
		t.idleGate.Period = Patterns[i].Period
		if !t.idleGate.Ready(now) {
			return Frame{}, false
		}
		var f Frame
		t.patterns[i].Step(&f)
		return f, true
	}
	return Frame{}, false
}

// CountDownElapsed returns the scaled countdown time at now.
func (t *Timer) CountDownElapsed(now uint32) uint32 {
	scaled := uint64(Elapsed(now, t.countOrigin)) * uint64(t.cfg.TimeScale)
	if scaled > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(scaled)
}

// ConfigElapsed returns the time since the last configuration input.
func (t *Timer) ConfigElapsed(now uint32) uint32 {
	return Elapsed(now, t.configOrigin)
}

// Mode returns the active mode.
func (t *Timer) Mode() Mode {
	return t.mode
}

// Field returns the configuration field being edited.
func (t *Timer) Field() Field {
	return t.field
}

// Settings returns the current user selections.
func (t *Timer) Settings() Settings {
	return t.settings
}
