// Package strip provides the light strip output with hardware abstraction.
// The real implementation drives APA102 cells over SPI, the terminal
// implementation draws the cells as colored blocks, and the fake records
// frames for tests.
package strip

import "github.com/sweeney/square-timer/internal/logic"

// Strip writes full frames to a row of addressable cells.
type Strip interface {
	// SetFrame replaces the pending frame. Nothing is visible until Show.
	SetFrame(f logic.Frame)

	// Show flushes the pending frame to the device.
	Show() error

	// SetBrightness sets the global brightness applied on the next Show.
	SetBrightness(level uint8)

	// Clear blanks the pending frame and flushes it immediately.
	Clear() error

	// Close releases device resources.
	Close() error
}

// pack converts a frame to RGB byte triples with brightness applied.
func pack(dst []byte, f logic.Frame, brightness uint8) []byte {
	dst = dst[:0]
	for _, c := range f {
		dst = append(dst,
			logic.Scale8(c.R, brightness),
			logic.Scale8(c.G, brightness),
			logic.Scale8(c.B, brightness))
	}
	return dst
}
