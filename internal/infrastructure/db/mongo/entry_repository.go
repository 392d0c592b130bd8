package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

const collectionEntries = "time_entries"

type EntryRepository struct {
	col *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{col: db.Collection(collectionEntries)}
}

// Create inserts a new time entry document.
func (r *EntryRepository) Create(ctx context.Context, e *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// ListByClient returns the client's entries ordered by date descending.
// Entries sharing a date are returned newest insertion first.
func (r *EntryRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []*domain.TimeEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

// FindByIdempotencyKey retrieves the entry previously created with the given
// key for this client, if any.
func (r *EntryRepository) FindByIdempotencyKey(ctx context.Context, clientID, key string) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.TimeEntry
	err := r.col.FindOne(ctx, bson.M{"client_id": clientID, "idempotency_key": key}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry by idempotency key: %w", err)
	}
	return &e, nil
}

// Delete removes the entry only when it belongs to clientID. A foreign or
// missing entry id yields domain.ErrEntryNotFound either way.
func (r *EntryRepository) Delete(ctx context.Context, entryID, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": entryID, "client_id": clientID})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates the listing and idempotency lookup indexes.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "date", Value: -1}}},
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "idempotency_key", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
