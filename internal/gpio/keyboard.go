package gpio

import (
	"io"
	"sync"
	"sync/atomic"
)

// Key bytes understood by KeyReader.
const (
	KeyToggle = ' '
	KeyQuit   = 'q'
	keyCtrlC  = 0x03
)

// KeyReader emulates the button from a raw terminal. A terminal only reports
// key presses, so the space bar toggles the button between held and released.
type KeyReader struct {
	down     atomic.Bool
	quit     chan struct{}
	quitOnce sync.Once
}

// NewKeyReader starts reading keys from in. in should be a terminal in raw
// mode so that keys arrive without waiting for a newline.
func NewKeyReader(in io.Reader) *KeyReader {
	k := &KeyReader{quit: make(chan struct{})}
	go k.run(in)
	return k
}

func (k *KeyReader) run(in io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for _, c := range buf[:n] {
			switch c {
			case KeyToggle:
				k.down.Store(!k.down.Load())
			case KeyQuit, keyCtrlC:
				k.stop()
				return
			}
		}
		if err != nil {
			k.stop()
			return
		}
	}
}

func (k *KeyReader) stop() {
	k.quitOnce.Do(func() { close(k.quit) })
}

// Read returns the emulated button level.
func (k *KeyReader) Read() (bool, error) {
	return k.down.Load(), nil
}

// Quit is closed when the user asks to quit or the input ends.
func (k *KeyReader) Quit() <-chan struct{} {
	return k.quit
}

// Close stops reporting; the reading goroutine exits with its input.
func (k *KeyReader) Close() error {
	k.stop()
	return nil
}
