package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hourlog/timetracking-system/internal/core/domain"
	"github.com/hourlog/timetracking-system/internal/core/ports"
)

const collectionClients = "clients"

// ClientRepository persists clients. All lookups and deletes are filtered by
// owner_id so a client belonging to another user behaves exactly like a
// missing one.
type ClientRepository struct {
	db      *mongo.Database
	clients *mongo.Collection
	entries *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		db:      db,
		clients: db.Collection(collectionClients),
		entries: db.Collection(collectionEntries),
	}
}

// Create inserts a new client document.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.clients.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's clients with aggregated entry hours,
// ordered by name ascending. The totals are computed in a single
// aggregation pass so each row reflects one consistent snapshot.
func (r *ClientRepository) ListByOwner(ctx context.Context, ownerID string) ([]ports.ClientSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner_id": ownerID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionEntries,
			"localField":   "_id",
			"foreignField": "client_id",
			"as":           "entries",
		}}},
		{{Key: "$addFields", Value: bson.M{"total_hours": bson.M{"$sum": "$entries.hours"}}}},
		{{Key: "$project", Value: bson.M{"entries": 0}}},
		{{Key: "$sort", Value: bson.M{"name": 1}}},
	}

	cursor, err := r.clients.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate clients: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []ports.ClientSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return summaries, nil
}

// FindByID retrieves a client only when it is owned by ownerID.
func (r *ClientRepository) FindByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	err := r.clients.FindOne(ctx, bson.M{"_id": clientID, "owner_id": ownerID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &c, nil
}

// DeleteCascade removes the client and all of its time entries inside one
// transaction. The ownership-filtered delete doubles as the existence check,
// so a foreign client id surfaces as domain.ErrClientNotFound without
// revealing whether it exists.
func (r *ClientRepository) DeleteCascade(ctx context.Context, clientID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sess, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.clients.DeleteOne(sc, bson.M{"_id": clientID, "owner_id": ownerID})
		if err != nil {
			return nil, fmt.Errorf("delete client: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, domain.ErrClientNotFound
		}
		if _, err := r.entries.DeleteMany(sc, bson.M{"client_id": clientID}); err != nil {
			return nil, fmt.Errorf("delete client entries: %w", err)
		}
		return nil, nil
	})
	return err
}

// EnsureIndexes creates the owner scoping index.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "name", Value: 1}},
	})
	return err
}
