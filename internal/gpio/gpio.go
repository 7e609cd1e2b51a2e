// Package gpio provides the push-button input with hardware abstraction.
// The real implementation uses Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Reader reads the raw button line.
type Reader interface {
	// Read returns true while the button is held down.
	// Active-low wiring is already inverted by the implementation.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Defaults for the reference wiring (BCM numbering).
const (
	DefaultChip = "gpiochip0"
	DefaultPin  = 5
)
