// Package filestore keeps the session in a JSON file. Each call reads the
// file and each write replaces it atomically, so there is no in-memory copy
// to go stale between processes.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
	"github.com/jrsteele09/go-admin-dashboard/session"
)

const fileName = "session.json"

var _ session.Store = (*FileStore)(nil)

type FileStore struct {
	mu   sync.Mutex
	path string
}

// New creates dataDir if needed and returns a store backed by
// dataDir/session.json.
func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("[filestore New] creating data folder: %w", err)
	}
	return &FileStore{path: filepath.Join(dataDir, fileName)}, nil
}

// Path is the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.loadLocked()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", session.ErrNotFound
	}
	return v, nil
}

func (s *FileStore) Put(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked()
	if err != nil {
		return err
	}
	for k, v := range values {
		current[k] = v
	}
	return s.saveLocked(current)
}

func (s *FileStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked()
	if err != nil {
		return err
	}
	changed := false
	for _, k := range keys {
		if _, ok := current[k]; ok {
			delete(current, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.saveLocked(current)
}

func (s *FileStore) loadLocked() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	values := map[string]string{}
	if len(b) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return values, nil
}

// saveLocked writes to a temp file in the same folder and renames it over
// the old one so a crash never leaves a half written session.
func (s *FileStore) saveLocked(values map[string]string) error {
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return apperrors.Wrapf(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return apperrors.Wrapf(err, "writing temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return apperrors.Wrapf(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrapf(err, "closing temp file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return apperrors.Wrapf(err, "replacing %s", s.path)
	}
	return nil
}
