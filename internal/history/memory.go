package history

import "sync"

// MemoryStore keeps history in memory only
type MemoryStore struct {
	mu    sync.Mutex
	size  int
	names []string
}

// NewMemoryStore creates a store holding at most size names
func NewMemoryStore(size int) *MemoryStore {
	if size <= 0 {
		size = DefaultSize
	}
	return &MemoryStore{size: size}
}

func (s *MemoryStore) Add(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	s.names = append([]string{name}, s.names...)
	if len(s.names) > s.size {
		s.names = s.names[:s.size]
	}
	return nil
}

func (s *MemoryStore) Names() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
