package localstore

import "sync"

// Memory is an in-memory Store for tests and ephemeral sessions.
type Memory struct {
	mu        sync.Mutex
	token     string
	hasToken  bool
	favorites []string
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Token returns the stored token, or ErrNotFound.
func (m *Memory) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasToken {
		return "", ErrNotFound
	}
	return m.token, nil
}

// SetToken stores the token.
func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.hasToken = true
	return nil
}

// DeleteToken removes the token.
func (m *Memory) DeleteToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.hasToken = false
	return nil
}

// Favorites returns a copy of the stored favorite IDs.
func (m *Memory) Favorites() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.favorites))
	copy(out, m.favorites)
	return out, nil
}

// SetFavorites stores a copy of the favorite IDs.
func (m *Memory) SetFavorites(ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites = make([]string, len(ids))
	copy(m.favorites, ids)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
