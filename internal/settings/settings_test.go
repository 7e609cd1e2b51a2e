package settings

import (
	"errors"
	"testing"

	"github.com/sweeney/square-timer/internal/logic"
	"github.com/sweeney/square-timer/internal/strip"
)

func TestLoadAppliesStoredSettings(t *testing.T) {
	store := &MemStore{Slots: [numSlots]byte{2, 1}}
	out := strip.NewFakeStrip()

	s := NewAdapter(store, out).Load()
	if s.Brightness != 2 || s.Pattern != 1 {
		t.Errorf("expected {2 1}, got %+v", s)
	}
	if out.Brightness != logic.BrightnessLevels[2] {
		t.Errorf("expected brightness %d applied, got %d", logic.BrightnessLevels[2], out.Brightness)
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		slots [numSlots]byte
		want  logic.Settings
	}{
		{"erased memory", [numSlots]byte{0xff, 0xff}, logic.Settings{}},
		{"brightness past table", [numSlots]byte{byte(len(logic.BrightnessLevels)), 1}, logic.Settings{Pattern: 1}},
		{"pattern past table", [numSlots]byte{3, byte(len(logic.Patterns))}, logic.Settings{Brightness: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := strip.NewFakeStrip()
			got := NewAdapter(&MemStore{Slots: tt.slots}, out).Load()
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if out.Brightness != tt.want.BrightnessLevel() {
				t.Errorf("expected brightness %d, got %d", tt.want.BrightnessLevel(), out.Brightness)
			}
		})
	}
}

func TestLoadReadErrorFallsBack(t *testing.T) {
	store := &MemStore{Slots: [numSlots]byte{2, 2}, ReadError: errors.New("i/o error")}
	out := strip.NewFakeStrip()
	out.Brightness = 0

	s := NewAdapter(store, out).Load()
	if s != (logic.Settings{}) {
		t.Errorf("expected defaults, got %+v", s)
	}
	if out.Brightness != 255 {
		t.Errorf("expected full brightness, got %d", out.Brightness)
	}
}

func TestApplyPersistsChanges(t *testing.T) {
	store := &MemStore{}
	out := strip.NewFakeStrip()
	a := NewAdapter(store, out)

	if err := a.Apply(logic.Event{Type: logic.EventBrightnessChanged, Value: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Slots[SlotBrightness] != 1 {
		t.Errorf("expected brightness slot 1, got %d", store.Slots[SlotBrightness])
	}
	if out.Brightness != logic.BrightnessLevels[1] {
		t.Errorf("expected strip brightness %d, got %d", logic.BrightnessLevels[1], out.Brightness)
	}

	if err := a.Apply(logic.Event{Type: logic.EventPatternChanged, Value: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Slots[SlotPattern] != 2 {
		t.Errorf("expected pattern slot 2, got %d", store.Slots[SlotPattern])
	}

	// Mode and field changes are not persisted.
	a.Apply(logic.Event{Type: logic.EventModeChanged, To: logic.ModeIdle})
	a.Apply(logic.Event{Type: logic.EventFieldChanged, Field: logic.FieldPattern})
	if store.Writes != 2 {
		t.Errorf("expected 2 writes, got %d", store.Writes)
	}
}

func TestApplyWriteErrorStillSetsBrightness(t *testing.T) {
	store := &MemStore{WriteError: errors.New("read-only")}
	out := strip.NewFakeStrip()

	err := NewAdapter(store, out).Apply(logic.Event{Type: logic.EventBrightnessChanged, Value: 3})
	if err == nil {
		t.Fatal("expected error")
	}
	if out.Brightness != logic.BrightnessLevels[3] {
		t.Errorf("expected brightness applied despite write error, got %d", out.Brightness)
	}
}
