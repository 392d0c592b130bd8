package ports

import (
	"context"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

// ClientSummary is a client annotated with the sum of hours across all of
// its time entries (0 when it has none).
type ClientSummary struct {
	ID         string  `json:"id" bson:"_id"`
	Name       string  `json:"name" bson:"name"`
	Rate       float64 `json:"rate" bson:"rate"`
	TotalHours float64 `json:"total_hours" bson:"total_hours"`
}

// ClientRepository defines persistence operations for clients. Every read
// and delete is scoped by ownerID; a client belonging to another user is
// reported as domain.ErrClientNotFound.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	// ListByOwner returns every client owned by ownerID with its aggregated
	// total hours, ordered by name ascending, in a single query pass.
	ListByOwner(ctx context.Context, ownerID string) ([]ClientSummary, error)
	FindByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error)
	// DeleteCascade removes the client and all of its time entries as one
	// atomic operation.
	DeleteCascade(ctx context.Context, clientID, ownerID string) error
}

// EntryRepository defines persistence operations for time entries. Callers
// must have verified client ownership before mutating through it.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	// ListByClient returns entries ordered by date descending.
	ListByClient(ctx context.Context, clientID string) ([]*domain.TimeEntry, error)
	FindByIdempotencyKey(ctx context.Context, clientID, key string) (*domain.TimeEntry, error)
	// Delete removes the entry only when it belongs to clientID; otherwise
	// domain.ErrEntryNotFound.
	Delete(ctx context.Context, entryID, clientID string) error
}
