package store

import "sync"

// MemStore is an in-memory Store for tests. It follows the same lazy
// materialization rules as the durable backends.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{slots: map[string][]byte{}}
}

func (s *MemStore) ReadCollection(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.slots[name]
	if !ok {
		s.slots[name] = emptyList
		return emptyList, nil
	}
	return data, nil
}

func (s *MemStore) WriteCollection(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[name] = data
	return nil
}

func (s *MemStore) ReadSlot(name string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[name]
	return data, ok, nil
}

func (s *MemStore) WriteSlot(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[name] = data
	return nil
}

func (s *MemStore) DeleteSlot(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, name)
	return nil
}
