// Package settings persists the user's brightness and pattern selections and
// applies them to the strip.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Slots of the persistent store. Each selection lives in its own byte so a
// write can only ever leave the other selection untouched.
const (
	SlotBrightness = 0
	SlotPattern    = 1

	numSlots = 2
)

// Store is a tiny byte-addressed persistent memory.
type Store interface {
	ReadSlot(slot int) (byte, error)
	WriteSlot(slot int, v byte) error
}

// FileStore keeps one byte per slot at the slot's offset in a file.
// A missing file or slot reads as 0.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ReadSlot returns the byte stored in slot.
func (s *FileStore) ReadSlot(slot int) (byte, error) {
	if err := checkSlot(slot); err != nil {
		return 0, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	var b [1]byte
	if _, err := f.ReadAt(b[:], int64(slot)); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("read slot %d: %w", slot, err)
	}
	return b[0], nil
}

// WriteSlot writes v to slot and syncs it to disk before returning.
func (s *FileStore) WriteSlot(slot int, v byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	if _, err := f.WriteAt([]byte{v}, int64(slot)); err != nil {
		f.Close()
		return fmt.Errorf("write slot %d: %w", slot, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync store: %w", err)
	}
	return f.Close()
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= numSlots {
		return fmt.Errorf("slot %d out of range", slot)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Slots [numSlots]byte

	// Writes counts successful writes.
	Writes int

	// ReadError and WriteError, if set, are returned by every call.
	ReadError  error
	WriteError error
}

// ReadSlot returns the byte stored in slot.
func (m *MemStore) ReadSlot(slot int) (byte, error) {
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	if err := checkSlot(slot); err != nil {
		return 0, err
	}
	return m.Slots[slot], nil
}

// WriteSlot stores v in slot.
func (m *MemStore) WriteSlot(slot int, v byte) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	m.Slots[slot] = v
	m.Writes++
	return nil
}
