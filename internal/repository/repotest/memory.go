// Package repotest provides an in-memory record store for tests.
package repotest

import (
	"context"
	"sync"

	"github.com/vibe-gaming/profile-service/internal/domain"
)

// UserProfiles mirrors the users table: ids are assigned on insert and the
// unique key is enforced on insert and replace, nil matching nil.
type UserProfiles struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.UserProfile

	// BeforeCreate runs unlocked before an insert is applied. Set it before
	// the store is shared between goroutines.
	BeforeCreate func()
}

func NewUserProfiles() *UserProfiles {
	return &UserProfiles{rows: make(map[int64]domain.UserProfile)}
}

func (m *UserProfiles) GetByID(_ context.Context, id int64) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (m *UserProfiles) GetByUniqueKey(_ context.Context, key domain.UniqueKey) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if row.UniqueKey().Equal(key) {
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *UserProfiles) Create(_ context.Context, profile *domain.UserProfile) error {
	if hook := m.BeforeCreate; hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collides(profile) {
		return domain.ErrDuplicateEntry
	}
	m.nextID++
	profile.ID = m.nextID
	m.rows[profile.ID] = *profile
	return nil
}

func (m *UserProfiles) Replace(_ context.Context, profile *domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	if m.collides(profile) {
		return domain.ErrDuplicateEntry
	}
	m.rows[profile.ID] = *profile
	return nil
}

func (m *UserProfiles) Delete(_ context.Context, id int64) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.rows, id)
	return &row, nil
}

func (m *UserProfiles) Ping(context.Context) error { return nil }

// Len returns the number of stored rows.
func (m *UserProfiles) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *UserProfiles) collides(profile *domain.UserProfile) bool {
	for id, row := range m.rows {
		if id != profile.ID && row.UniqueKey().Equal(profile.UniqueKey()) {
			return true
		}
	}
	return false
}
