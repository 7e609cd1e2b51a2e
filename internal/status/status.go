// Package status provides a thread-safe status tracker for the square-timer
// daemon. The daemon logs its snapshots as JSON at startup, on every
// heartbeat and at shutdown.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/square-timer/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	DebounceMs  int64
	HeartbeatMs int64
	TimeScale   uint32
	Store       string
	Sim         bool
}

// Counts tallies the events the timer has produced since startup.
type Counts struct {
	ModeChanges       int
	FieldChanges      int
	BrightnessChanges int
	PatternChanges    int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	Mode      logic.Mode
	Field     logic.Field
	Settings  logic.Settings
	Counts    Counts
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the timer mode, edited field and settings.
// Called from runLoop on every tick.
func (t *Tracker) Update(mode logic.Mode, field logic.Field, s logic.Settings) {
	t.mu.Lock()
	t.snap.Mode = mode
	t.snap.Field = field
	t.snap.Settings = s
	t.mu.Unlock()
}

// Record counts a timer event.
func (t *Tracker) Record(ev logic.Event) {
	t.mu.Lock()
	switch ev.Type {
	case logic.EventModeChanged:
		t.snap.Counts.ModeChanges++
	case logic.EventFieldChanged:
		t.snap.Counts.FieldChanges++
	case logic.EventBrightnessChanged:
		t.snap.Counts.BrightnessChanges++
	case logic.EventPatternChanged:
		t.snap.Counts.PatternChanges++
	}
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
