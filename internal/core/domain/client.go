package domain

import (
	"errors"
	"time"
)

// ErrClientNotFound covers both a missing client and a client owned by a
// different user. The two cases are indistinguishable to callers, so
// probing with foreign ids leaks nothing.
var ErrClientNotFound = errors.New("client not found")

// Client is a billable client owned by exactly one user. Every query that
// touches a client must filter by OwnerID.
type Client struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Rate      float64   `json:"rate" bson:"rate"`
	OwnerID   string    `json:"-" bson:"owner_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
