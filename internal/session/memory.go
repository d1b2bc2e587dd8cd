// Package session provides per-visitor key-value storage scoped to a
// browser session cookie, plus the gin middleware that attaches it to
// each request.
package session

import (
	"log"
	"sync"
	"time"
)

// Store is one visitor's session storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Manager hands out the Store for a session id.
type Manager interface {
	Open(id string) Store
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
}

// MemoryManager keeps every session in memory. Sessions are lost on
// restart, and ones not opened for the retention period are dropped by
// Purge.
type MemoryManager struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	now      func() time.Time
	stop     chan struct{}
}

type memoryEntry struct {
	store    *Memory
	lastSeen time.Time
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		sessions: make(map[string]*memoryEntry),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

func (m *MemoryManager) Open(id string) Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		e = &memoryEntry{store: NewMemory()}
		m.sessions[id] = e
	}
	e.lastSeen = m.now()
	return e.store
}

// Len reports how many sessions are held.
func (m *MemoryManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Purge drops sessions not opened since olderThan ago and returns how
// many went.
func (m *MemoryManager) Purge(olderThan time.Duration) int {
	cutoff := m.now().Add(-olderThan)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// StartCleanup purges idle sessions every interval until Close.
func (m *MemoryManager) StartCleanup(retention, interval time.Duration, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := m.Purge(retention); n > 0 {
					logger.Printf("Session cleanup: dropped %d idle sessions", n)
				}
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *MemoryManager) Close() {
	select {
	case <-m.stop:
	default:
		close(m.stop)
	}
}
