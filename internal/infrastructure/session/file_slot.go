package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// FileSlot persists the session as a JSON file named after the fixed storage
// name, in the configured state directory. It is the default slot backend.
type FileSlot struct {
	path string
}

// NewFileSlot returns a FileSlot rooted at dir.
func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{path: filepath.Join(dir, domain.StorageName+".json")}
}

// Load reads the persisted session. A missing file means no prior session.
func (f *FileSlot) Load(_ context.Context) (*domain.PersistedSession, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}

	var s domain.PersistedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &s, nil
}

// Save writes the session atomically (temp file + rename) so a crash mid-write
// never leaves a truncated slot behind.
func (f *FileSlot) Save(_ context.Context, s domain.PersistedSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session slot: %w", err)
	}
	return nil
}

// Clear removes the slot. Clearing an absent slot is not an error.
func (f *FileSlot) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
