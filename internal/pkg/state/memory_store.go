package state

import (
	"sync"
	"time"
)

// Незавершённый диалог не должен висеть вечно.
const stateTTL = 10 * time.Minute

type MemoryStore struct {
	states map[int64]State
	expiry map[int64]time.Time
	mu     sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		states: make(map[int64]State),
		expiry: make(map[int64]time.Time),
	}

	go store.cleanupWorker()

	return store
}

func (m *MemoryStore) cleanupWorker() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		m.CleanupExpired()
	}
}

func (m *MemoryStore) Set(userID int64, s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == Idle {
		delete(m.states, userID)
		delete(m.expiry, userID)
		return
	}
	m.states[userID] = s
	m.expiry[userID] = time.Now().Add(stateTTL)
}

func (m *MemoryStore) Get(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.states[userID]
	if !exists {
		return Idle
	}

	if expiry, exists := m.expiry[userID]; exists && time.Now().After(expiry) {
		return Idle
	}

	return s
}

func (m *MemoryStore) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
	delete(m.expiry, userID)
}

func (m *MemoryStore) CleanupExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for userID, expiry := range m.expiry {
		if now.After(expiry) {
			delete(m.states, userID)
			delete(m.expiry, userID)
		}
	}
}
