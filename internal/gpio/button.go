package gpio

import (
	"fmt"

	"github.com/sweeney/square-timer/internal/logic"
)

// DefaultDebounce is the debounce window in milliseconds.
const DefaultDebounce = 20

// Button debounces a Reader and derives press and release edges and hold
// durations. Poll must be called once per tick before the predicates are
// queried; edge predicates describe only the most recent poll.
type Button struct {
	reader   Reader
	debounce uint32

	primed     bool
	pressed    bool
	changed    bool
	lastChange uint32
	now        uint32
}

// NewButton wraps r with a debounce window of debounce milliseconds.
func NewButton(r Reader, debounce uint32) *Button {
	return &Button{reader: r, debounce: debounce}
}

// Poll samples the line at time now. A change is accepted only once the
// previous change is at least the debounce window old. On a read error the
// previous state is kept and no edge is reported.
func (b *Button) Poll(now uint32) error {
	b.now = now
	b.changed = false

	raw, err := b.reader.Read()
	if err != nil {
		return fmt.Errorf("read button: %w", err)
	}

	if !b.primed {
		// The state at startup is a baseline, not an edge.
		b.pressed = raw
		b.lastChange = now
		b.primed = true
		return nil
	}

	if logic.Elapsed(now, b.lastChange) < b.debounce {
		return nil
	}
	if raw != b.pressed {
		b.pressed = raw
		b.changed = true
		b.lastChange = now
	}
	return nil
}

// IsPressed reports the debounced level.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// WasPressed reports a press edge on the last poll.
func (b *Button) WasPressed() bool {
	return b.pressed && b.changed
}

// WasReleased reports a release edge on the last poll.
func (b *Button) WasReleased() bool {
	return !b.pressed && b.changed
}

// PressedFor reports whether the button has been held for at least ms.
func (b *Button) PressedFor(ms uint32) bool {
	return b.pressed && b.HeldFor() >= ms
}

// HeldFor returns how long the button has been held, or 0 when released.
func (b *Button) HeldFor() uint32 {
	if !b.pressed {
		return 0
	}
	return logic.Elapsed(b.now, b.lastChange)
}

var _ logic.Button = (*Button)(nil)
