package daftar

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// slotFilename is the fixed key of the durable slot holding the blob.
const slotFilename = "daftar.json"

// Storage is the durable slot for the application blob: a single file under
// a data directory. It is the only persistence boundary; callers own the
// in-memory state and invoke Save after each transformation.
type Storage struct {
	path string // data directory
}

// NewStorage returns a Storage rooted at the given data directory.
func NewStorage(path string) *Storage {
	return &Storage{path: path}
}

// slot returns the full path of the blob file.
func (s *Storage) slot() string { return filepath.Join(s.path, slotFilename) }

// Save overwrites the slot with the serialized state. The write goes
// through a temp file and a rename so a crash cannot leave a half-written
// blob behind. The result is returned so the contract is testable, even
// when the caller chooses to ignore it.
func (s *Storage) Save(d *AppData) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", s.path, err)
	}
	tmp, err := os.CreateTemp(s.path, slotFilename+".*")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %q: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeAppData(tmp, d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temp file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.slot()); err != nil {
		return fmt.Errorf("cannot replace slot %q: %w", s.slot(), err)
	}
	return nil
}

// Load reads the slot back into a state. A missing slot yields the
// synthesized default; a corrupt one is treated the same, recovered
// silently rather than surfaced as an error. The result is always
// normalized, so the fixed 200-row invariant holds whatever was stored.
func (s *Storage) Load() *AppData {
	f, err := os.Open(s.slot())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("read-slot name=%q err=%q, starting from defaults", s.slot(), err)
		}
		d := DefaultAppData()
		return d
	}
	defer f.Close()

	d, err := DecodeAppData(f)
	if err != nil {
		log.Printf("corrupt-slot name=%q err=%q, starting from defaults", s.slot(), err)
		d = DefaultAppData()
	}
	d.Normalize()
	return d
}

// Clear deletes the slot entirely. It does not reset in-memory state; the
// caller reloads, which then yields the synthesized default.
func (s *Storage) Clear() error {
	err := os.Remove(s.slot())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot delete slot %q: %w", s.slot(), err)
	}
	return nil
}
