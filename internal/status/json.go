package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/square-timer/internal/logic"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event           string     `json:"event,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	Mode            string     `json:"mode"`
	Field           string     `json:"field"`
	Brightness      int        `json:"brightness"`
	BrightnessIndex int        `json:"brightness_index"`
	Pattern         string     `json:"pattern"`
	UptimeSeconds   int64      `json:"uptime_seconds"`
	StartTime       string     `json:"start_time"`
	Timestamp       string     `json:"timestamp"`
	Counts          CountsJSON `json:"event_counts"`
	Config          ConfigJSON `json:"config"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	ModeChanges       int `json:"mode_changes"`
	FieldChanges      int `json:"field_changes"`
	BrightnessChanges int `json:"brightness_changes"`
	PatternChanges    int `json:"pattern_changes"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	DebounceMs  int64  `json:"debounce_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	TimeScale   uint32 `json:"time_scale"`
	Store       string `json:"store"`
	Sim         bool   `json:"sim,omitempty"`
}

func buildInner(snap Snapshot) StatusInner {
	mode := string(snap.Mode)
	if mode == "" {
		mode = "UNKNOWN"
	}
	field := string(snap.Field)
	if field == "" {
		field = "UNKNOWN"
	}
	s := snap.Settings.Normalize()

	return StatusInner{
		Mode:            mode,
		Field:           field,
		Brightness:      int(s.BrightnessLevel()),
		BrightnessIndex: int(s.Brightness),
		Pattern:         logic.Patterns[s.Pattern].Name,
		UptimeSeconds:   int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:       snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:       snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			ModeChanges:       snap.Counts.ModeChanges,
			FieldChanges:      snap.Counts.FieldChanges,
			BrightnessChanges: snap.Counts.BrightnessChanges,
			PatternChanges:    snap.Counts.PatternChanges,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			DebounceMs:  snap.Config.DebounceMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			TimeScale:   snap.Config.TimeScale,
			Store:       snap.Config.Store,
			Sim:         snap.Config.Sim,
		},
	}
}

// FormatJSON returns the indented JSON status (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent returns the single-line JSON status for a lifecycle
// event such as HEARTBEAT.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
