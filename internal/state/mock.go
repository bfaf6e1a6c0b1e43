package state

import "sync"

// Mock is a test double for Manager that stores saves in memory.
type Mock struct {
	mu       sync.Mutex
	navState *NavigationState
	saves    int
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

// SetNavigation presets the state returned by GetNavigation.
func (m *Mock) SetNavigation(state *NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = state
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = &state
	m.saves++
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.navState, nil
}

// Saves returns how many times SaveNavigation was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
