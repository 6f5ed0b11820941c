package services

import "sync"

// EditSessionManager tracks, per browsing session, the one order a
// client has asked to edit. Each session is either idle or has exactly
// one pending order id; requesting an edit overwrites any earlier
// pending id, and reading the pending id clears it, so a second read in
// the same page render sees nothing.
type EditSessionManager struct {
	pending map[string]uint
	mu      sync.Mutex
}

// NewEditSessionManager creates an empty EditSessionManager.
func NewEditSessionManager() *EditSessionManager {
	return &EditSessionManager{
		pending: make(map[string]uint),
	}
}

// RequestEdit marks orderID as the session's pending edit target.
func (m *EditSessionManager) RequestEdit(sessionID string, orderID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending[sessionID] = orderID
}

// TakePendingEdit returns and clears the session's pending order id.
// The second result is false when the session is idle.
func (m *EditSessionManager) TakePendingEdit(sessionID string) (uint, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.pending[sessionID]
	if ok {
		delete(m.pending, sessionID)
	}
	return id, ok
}
