package ports

import (
	"context"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

// CreateEntryInput carries the fields for logging hours against a client.
// IdempotencyKey is optional; when a previously seen key is replayed the
// original entry is returned instead of inserting a second one.
type CreateEntryInput struct {
	ClientID       string
	Date           string
	Hours          float64
	Note           string
	IdempotencyKey string
}

// TrackingService exposes all client and time-entry operations. Every method
// is parameterized by the authenticated user's id and answers only within
// that user's ownership graph.
type TrackingService interface {
	ListClients(ctx context.Context, ownerID string) ([]ClientSummary, error)
	CreateClient(ctx context.Context, ownerID, name string, rate float64) (*ClientSummary, error)
	DeleteClient(ctx context.Context, ownerID, clientID string) error
	ListEntries(ctx context.Context, ownerID, clientID string) ([]*domain.TimeEntry, error)
	CreateEntry(ctx context.Context, ownerID string, input CreateEntryInput) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, ownerID, clientID, entryID string) error
}

// IdempotencyChecker is a fast-path guard against replayed entry
// submissions. Implementations may lose state (TTL eviction, restart); the
// repository's idempotency key lookup remains the source of truth.
type IdempotencyChecker interface {
	IsDuplicate(ctx context.Context, clientID, key string) (bool, error)
	Mark(ctx context.Context, clientID, key string) error
}
