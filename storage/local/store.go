// Package localstore persists small keyed string values across runs,
// standing in for the browser's localStorage.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/ultraship/employeehub/core/session"
)

// Store is a file-backed keyed string store. Writes go through a temp-file
// rename so no partial write is ever visible.
type Store struct {
	path string

	mutex sync.RWMutex
	data  map[string]string
}

var _ session.Storage = (*Store)(nil) // interface compliance check

// Open loads the store at path. A missing file starts empty; a corrupt file
// is also treated as empty so startup never fails on bad persisted state.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "creating state directory")
	}

	data := make(map[string]string)
	if raw, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(raw, &data); err != nil {
			data = make(map[string]string)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading state file")
	}

	return &Store{path: path, data: data}, nil
}

func (s *Store) Get(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// Set writes all entries or none.
func (s *Store) Set(entries map[string]string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	prev := s.data
	next := make(map[string]string, len(prev)+len(entries))
	for k, v := range prev {
		next[k] = v
	}
	for k, v := range entries {
		next[k] = v
	}

	s.data = next
	if err := s.flush(); err != nil {
		s.data = prev
		return err
	}
	return nil
}

func (s *Store) Delete(keys ...string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	prev := s.data
	next := make(map[string]string, len(prev))
	for k, v := range prev {
		next[k] = v
	}
	for _, k := range keys {
		delete(next, k)
	}

	s.data = next
	if err := s.flush(); err != nil {
		s.data = prev
		return err
	}
	return nil
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding state")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing state file")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "replacing state file")
}
