package strip

import "github.com/sweeney/square-timer/internal/logic"

// FakeStrip records frames and calls for test assertions.
type FakeStrip struct {
	// Pending is the frame set by the last SetFrame or Clear.
	Pending logic.Frame

	// Shown contains every frame that was flushed, in order.
	Shown []logic.Frame

	// Brightness is the last global brightness set.
	Brightness uint8

	// Clears counts Clear calls.
	Clears int

	// ShowError, if set, will be returned by Show and Clear.
	ShowError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeStrip creates a FakeStrip at full brightness.
func NewFakeStrip() *FakeStrip {
	return &FakeStrip{Brightness: 255}
}

// SetFrame records the pending frame.
func (f *FakeStrip) SetFrame(frame logic.Frame) {
	f.Pending = frame
}

// Show records the pending frame as shown.
func (f *FakeStrip) Show() error {
	if f.ShowError != nil {
		return f.ShowError
	}
	f.Shown = append(f.Shown, f.Pending)
	return nil
}

// SetBrightness records the brightness.
func (f *FakeStrip) SetBrightness(level uint8) {
	f.Brightness = level
}

// Clear blanks and shows the pending frame.
func (f *FakeStrip) Clear() error {
	f.Clears++
	f.Pending = logic.Frame{}
	return f.Show()
}

// Close marks the strip as closed.
func (f *FakeStrip) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recently shown frame.
func (f *FakeStrip) Last() (logic.Frame, bool) {
	if len(f.Shown) == 0 {
		return logic.Frame{}, false
	}
	return f.Shown[len(f.Shown)-1], true
}

// Reset clears recorded frames.
func (f *FakeStrip) Reset() {
	f.Pending = logic.Frame{}
	f.Shown = nil
	f.Brightness = 255
	f.Clears = 0
	f.ShowError = nil
	f.Closed = false
}
