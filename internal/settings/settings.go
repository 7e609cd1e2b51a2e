package settings

import (
	"fmt"
	"log"

	"github.com/sweeney/square-timer/internal/logic"
)

// BrightnessSetter is the part of the strip the adapter drives.
type BrightnessSetter interface {
	SetBrightness(level uint8)
}

// Adapter loads and saves the timer settings and keeps the strip brightness
// in sync with them.
type Adapter struct {
	store Store
	out   BrightnessSetter
}

// NewAdapter creates an adapter over store and out.
func NewAdapter(store Store, out BrightnessSetter) *Adapter {
	return &Adapter{store: store, out: out}
}

// Load reads the persisted settings and applies the brightness. Unreadable
// or out-of-range values fall back to index 0; Load never fails.
func (a *Adapter) Load() logic.Settings {
	var s logic.Settings
	s.Brightness = a.read(SlotBrightness, "brightness")
	s.Pattern = a.read(SlotPattern, "pattern")

	n := s.Normalize()
	if n != s {
		log.Printf("settings: stored %+v out of range, using %+v", s, n)
	}
	a.out.SetBrightness(n.BrightnessLevel())
	return n
}

func (a *Adapter) read(slot int, name string) byte {
	v, err := a.store.ReadSlot(slot)
	if err != nil {
		log.Printf("settings: read %s: %v", name, err)
		return 0
	}
	return v
}

// Apply persists a brightness or pattern change immediately. Brightness is
// applied to the strip even if the write fails. Other events are ignored.
func (a *Adapter) Apply(ev logic.Event) error {
	switch ev.Type {
	case logic.EventBrightnessChanged:
		a.out.SetBrightness(logic.Settings{Brightness: ev.Value}.BrightnessLevel())
		if err := a.store.WriteSlot(SlotBrightness, ev.Value); err != nil {
			return fmt.Errorf("save brightness: %w", err)
		}
	case logic.EventPatternChanged:
		if err := a.store.WriteSlot(SlotPattern, ev.Value); err != nil {
			return fmt.Errorf("save pattern: %w", err)
		}
	}
	return nil
}
