package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hourlog/timetracking-system/internal/core/domain"
	"github.com/hourlog/timetracking-system/internal/core/ports"
)

// TrackingService implements all client and time-entry operations, scoped to
// the requesting user's ownership graph. Ownership checks always complete
// before any mutation is attempted.
type TrackingService struct {
	clients ports.ClientRepository
	entries ports.EntryRepository
	dedup   ports.IdempotencyChecker
	logger  zerolog.Logger
}

func NewTrackingService(clients ports.ClientRepository, entries ports.EntryRepository, dedup ports.IdempotencyChecker, logger zerolog.Logger) *TrackingService {
	return &TrackingService{clients: clients, entries: entries, dedup: dedup, logger: logger}
}

func (s *TrackingService) ListClients(ctx context.Context, ownerID string) ([]ports.ClientSummary, error) {
	return s.clients.ListByOwner(ctx, ownerID)
}

func (s *TrackingService) CreateClient(ctx context.Context, ownerID, name string, rate float64) (*ports.ClientSummary, error) {
	client := &domain.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Rate:      rate,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.clients.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Str("owner_id", ownerID).Msg("client created")

	// A brand new client has no entries, so its total is 0 by construction.
	return &ports.ClientSummary{
		ID:         client.ID,
		Name:       client.Name,
		Rate:       client.Rate,
		TotalHours: 0,
	}, nil
}

func (s *TrackingService) DeleteClient(ctx context.Context, ownerID, clientID string) error {
	if err := s.clients.DeleteCascade(ctx, clientID, ownerID); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", clientID).Str("owner_id", ownerID).Msg("client deleted")
	return nil
}

func (s *TrackingService) ListEntries(ctx context.Context, ownerID, clientID string) ([]*domain.TimeEntry, error) {
	if _, err := s.clients.FindByID(ctx, clientID, ownerID); err != nil {
		return nil, err
	}
	return s.entries.ListByClient(ctx, clientID)
}

func (s *TrackingService) CreateEntry(ctx context.Context, ownerID string, input ports.CreateEntryInput) (*domain.TimeEntry, error) {
	if _, err := s.clients.FindByID(ctx, input.ClientID, ownerID); err != nil {
		return nil, err
	}
	if input.Hours <= 0 {
		return nil, domain.ErrInvalidHours
	}

	if input.IdempotencyKey != "" {
		if existing := s.replayedEntry(ctx, input); existing != nil {
			return existing, nil
		}
	}

	entry := &domain.TimeEntry{
		ID:             uuid.NewString(),
		ClientID:       input.ClientID,
		Date:           input.Date,
		Hours:          input.Hours,
		Note:           input.Note,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create entry")
		return nil, err
	}

	if input.IdempotencyKey != "" {
		if err := s.dedup.Mark(ctx, input.ClientID, input.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Msg("failed to mark idempotency key")
		}
	}

	s.logger.Info().Str("entry_id", entry.ID).Str("client_id", entry.ClientID).Msg("entry created")
	return entry, nil
}

// replayedEntry returns the previously created entry when the idempotency
// key has been seen before. Redis answers the common "new key" case without
// touching Mongo; on a hit or a Redis error the repository lookup decides,
// so a dedup outage never breaks creation. Keys older than the dedup TTL
// fall outside the replay window.
func (s *TrackingService) replayedEntry(ctx context.Context, input ports.CreateEntryInput) *domain.TimeEntry {
	seen, err := s.dedup.IsDuplicate(ctx, input.ClientID, input.IdempotencyKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("idempotency check unavailable")
	} else if !seen {
		return nil
	}

	existing, err := s.entries.FindByIdempotencyKey(ctx, input.ClientID, input.IdempotencyKey)
	if err != nil {
		return nil
	}
	s.logger.Info().
		Str("entry_id", existing.ID).
		Str("idempotency_key", input.IdempotencyKey).
		Msg("idempotent replay")
	return existing
}

func (s *TrackingService) DeleteEntry(ctx context.Context, ownerID, clientID, entryID string) error {
	if _, err := s.clients.FindByID(ctx, clientID, ownerID); err != nil {
		return err
	}
	if err := s.entries.Delete(ctx, entryID, clientID); err != nil {
		return err
	}
	s.logger.Info().Str("entry_id", entryID).Str("client_id", clientID).Msg("entry deleted")
	return nil
}
