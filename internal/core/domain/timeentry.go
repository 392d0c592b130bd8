package domain

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("entry not found")
var ErrInvalidHours = errors.New("hours must be greater than 0")

// TimeEntry records hours logged against a client on a given date.
//
// Date is stored exactly as submitted (ISO-8601 recommended); it is not
// validated as a real calendar date.
type TimeEntry struct {
	ID             string    `json:"id" bson:"_id"`
	ClientID       string    `json:"client_id" bson:"client_id"`
	Date           string    `json:"date" bson:"date"`
	Hours          float64   `json:"hours" bson:"hours"`
	Note           string    `json:"note" bson:"note"`
	IdempotencyKey string    `json:"-" bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
