// Package models defines data structures shared across the TravelPal backend.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. Username, email and phone number are
// unique within the credential store. PasswordHash is a bcrypt digest and
// must never be echoed back to a client.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email"`
	PhoneNumber  string        `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string        `bson:"password" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"-"`
}
