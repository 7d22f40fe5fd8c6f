// Package session holds the platform's single current session: who is logged
// in and under which role, mirrored to a durable slot so a restart restores
// the login.
package session

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/udyambridge/business-platform-go/models"
	"github.com/udyambridge/business-platform-go/store"
)

type State int

const (
	// StateLoading lasts from construction until Restore has run. No access
	// decision should be taken while loading; see guard.Decide.
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

// Snapshot is the guard's read-only view of the manager.
type Snapshot struct {
	State   State
	Session *models.Session
}

// Manager is the two-state login machine (plus the transient loading phase).
// Every transition keeps the durable session slot and the in-process state
// consistent.
type Manager struct {
	store store.Store

	mu      sync.RWMutex
	state   State
	current *models.Session
}

// NewManager returns a manager in the loading state. Call Restore before
// serving any guarded request.
func NewManager(st store.Store) *Manager {
	return &Manager{store: st, state: StateLoading}
}

// Restore reads the durable session slot once and moves to Authenticated or
// Anonymous. Malformed slot data degrades to Anonymous and clears the slot,
// so the slot never disagrees with the restored state.
func (m *Manager) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok, err := m.store.ReadSlot(store.SlotSession)
	if err != nil {
		return err
	}
	if !ok {
		m.state = StateAnonymous
		m.current = nil
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("session: discarding malformed stored session: %v", err)
		if err := m.store.DeleteSlot(store.SlotSession); err != nil {
			return err
		}
		m.state = StateAnonymous
		m.current = nil
		return nil
	}

	m.state = StateAuthenticated
	m.current = &sess
	return nil
}

// Login replaces the current session with the given identity tagged with
// role, and persists it. The identity is trusted; authenticate it against the
// directory first.
func (m *Manager) Login(identity any, role models.Role) (*models.Session, error) {
	sess, err := models.NewSession(identity, role)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.WriteSlot(store.SlotSession, data); err != nil {
		return nil, err
	}
	m.state = StateAuthenticated
	m.current = sess
	return sess, nil
}

// Logout clears the durable slot and returns to Anonymous.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.DeleteSlot(store.SlotSession); err != nil {
		return err
	}
	m.state = StateAnonymous
	m.current = nil
	return nil
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Session: m.current}
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Current returns the session when authenticated, nil otherwise.
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
