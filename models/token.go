package models

import "time"

// StoredToken holds the structure for the session token document in mongo
type StoredToken struct {
	Key       string    `bson:"_id"`
	Token     string    `bson:"token"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
