package model

import "time"

// StoreSnapshot is a raw copy of the mall store management page.
type StoreSnapshot struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Body       string    `json:"-" bson:"body"`
	Listings   int       `json:"listings" bson:"listings"`
	CapturedAt time.Time `json:"captured_at" bson:"captured_at"`
}
