package lead

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockRepository implements Repository in memory for unit tests.
type MockRepository struct {
	mu        sync.RWMutex
	leads     map[string]StoredLead
	insertErr error
	listErr   error
}

// NewMockRepository creates an empty in-memory repository.
func NewMockRepository() *MockRepository {
	return &MockRepository{leads: make(map[string]StoredLead)}
}

// FailInsertsWith makes subsequent Insert calls fail with err (nil restores
// normal behavior).
func (m *MockRepository) FailInsertsWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertErr = err
}

// FailListsWith makes subsequent List and Collections calls fail with err.
func (m *MockRepository) FailListsWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

func (m *MockRepository) Insert(_ context.Context, l *Lead) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return "", m.insertErr
	}

	id := uuid.NewString()
	m.leads[id] = StoredLead{ID: id, Lead: *l, CreatedAt: time.Now().UTC()}
	return id, nil
}

func (m *MockRepository) List(_ context.Context, afterID string, limit int) ([]StoredLead, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listErr != nil {
		return nil, false, m.listErr
	}

	ids := make([]string, 0, len(m.leads))
	for id := range m.leads {
		if afterID == "" || id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	hasMore := len(ids) > limit
	if hasMore {
		ids = ids[:limit]
	}

	out := make([]StoredLead, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.leads[id])
	}
	return out, hasMore, nil
}

func (m *MockRepository) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	if len(m.leads) == 0 {
		return nil, nil
	}
	return []string{leadCollection}, nil
}

// Len reports the number of stored leads (useful for asserting that
// validation failures never reach the repository).
func (m *MockRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.leads)
}

// Clear removes all leads (useful for test cleanup).
func (m *MockRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = make(map[string]StoredLead)
}

// Compile-time interface check
var _ Repository = (*MockRepository)(nil)
