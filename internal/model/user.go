// Package model defines domain entities for the application.
package model

import "time"

// User is a registered account. Usernames are unique across the system;
// the backing store enforces this with a unique index.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
