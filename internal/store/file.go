package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each slot as one JSON file under a data directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a half-written slot; a crash between two slot writes can still
// leave cross-slot inconsistency, which callers accept.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *FileStore) Get(_ context.Context, slot string) (string, bool, error) {
	data, err := os.ReadFile(s.path(slot))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %s: %w", slot, err)
	}
	return string(data), true, nil
}

func (s *FileStore) Set(_ context.Context, slot, value string) error {
	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	if err := os.Rename(name, s.path(slot)); err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, slot string) error {
	if err := os.Remove(s.path(slot)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
