package localstore

import (
	"sync"

	"github.com/ultraship/employeehub/core/session"
)

// Dummy is an in-memory store for tests and throwaway sessions.
type Dummy struct {
	mutex sync.RWMutex
	data  map[string]string
}

var _ session.Storage = (*Dummy)(nil) // interface compliance check

func NewDummy() *Dummy {
	return &Dummy{data: make(map[string]string)}
}

func (s *Dummy) Get(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

func (s *Dummy) Set(entries map[string]string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for k, v := range entries {
		s.data[k] = v
	}
	return nil
}

func (s *Dummy) Delete(keys ...string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}
