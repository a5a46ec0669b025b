package client

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// KVStore is the opaque key-value storage the hosting environment gives us
// for the session identifier and similar strings.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

const sessionKey = "cartSessionId"

// sessionID picks the remote cart identity: authenticated users get a
// stable per-user session, anonymous visitors get a generated one that is
// persisted for the lifetime of the session.
func sessionID(store KVStore, userID uint) string {
	if userID != 0 {
		return fmt.Sprintf("session-%d", userID)
	}
	if v, ok := store.Get(sessionKey); ok && v != "" {
		return v
	}
	v := "session-" + uuid.NewString()
	store.Set(sessionKey, v)
	return v
}

// MemoryStore is a KVStore for tests and headless use.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}
