package repo

import (
	"context"

	"github.com/tradewatch/biasalert/internal/domain"
)

// AttemptStore keeps recent delivery attempts for the history endpoint.
// Process-local only — nothing here is expected to survive a restart.
type AttemptStore interface {
	// Append stores an attempt, assigning an ID if empty.
	Append(ctx context.Context, a *domain.Attempt) error
	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Attempt, error)
}
