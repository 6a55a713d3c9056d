package store

import (
	"sync"
	"time"
)

// MemoryStore keeps session state in process memory. Used by tests and as a
// fallback when no durable store is configured; state is lost on restart.
type MemoryStore struct {
	typed
	mu      sync.RWMutex
	records map[string]memoryRecord // key: sessionID + "/" + kind
}

type memoryRecord struct {
	data      []byte
	updatedAt time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{records: make(map[string]memoryRecord)}
	s.typed = typed{kv: s}
	return s
}

func memoryKey(sessionID, kind string) string { return sessionID + "/" + kind }

func (s *MemoryStore) get(sessionID, kind string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[memoryKey(sessionID, kind)]
	if !ok {
		return nil, nil
	}
	return rec.data, nil
}

func (s *MemoryStore) put(sessionID, kind string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.records[memoryKey(sessionID, kind)] = memoryRecord{data: buf, updatedAt: time.Now()}
	return nil
}

func (s *MemoryStore) del(sessionID, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, memoryKey(sessionID, kind))
	return nil
}

func (s *MemoryStore) delAll(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range []string{kindProfile, kindPlaythrough, kindQuiz} {
		delete(s.records, memoryKey(sessionID, kind))
	}
	return nil
}

// PruneStale removes every record not touched within the given age.
func (s *MemoryStore) PruneStale(olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	n := 0
	for key, rec := range s.records {
		if rec.updatedAt.Before(cutoff) {
			delete(s.records, key)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Close() error { return nil }
