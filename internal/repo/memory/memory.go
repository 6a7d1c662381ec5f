package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tradewatch/biasalert/internal/domain"
	"github.com/tradewatch/biasalert/internal/repo"
)

const defaultCap = 300

var _ repo.AttemptStore = (*Store)(nil)

// Store is a bounded in-memory attempt history. Once full, the oldest
// entries are dropped.
type Store struct {
	mu       sync.RWMutex
	attempts []domain.Attempt
	cap      int
}

func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCap
	}
	return &Store{
		attempts: make([]domain.Attempt, 0, capacity),
		cap:      capacity,
	}
}

func (m *Store) Append(ctx context.Context, a *domain.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.SentAt.IsZero() {
		a.SentAt = time.Now().UTC()
	}
	m.attempts = append(m.attempts, *a)
	if len(m.attempts) > m.cap {
		m.attempts = m.attempts[len(m.attempts)-m.cap:]
	}
	return nil
}

func (m *Store) Recent(ctx context.Context, limit int) ([]domain.Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 || limit > len(m.attempts) {
		limit = len(m.attempts)
	}
	out := make([]domain.Attempt, 0, limit)
	for i := len(m.attempts) - 1; i >= len(m.attempts)-limit; i-- {
		out = append(out, m.attempts[i])
	}
	return out, nil
}
