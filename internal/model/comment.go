package model

import "time"

// Comment is a single entry in the feed. AuthorID is a weak reference to
// the submitting User; the free-text fields are stored as supplied.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Website   string    `bson:"website" json:"website"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
