package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NoteDocument is the shape of a note in the mongo "notes" collection.
type NoteDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Content   string        `bson:"content" validate:"required,min=5"`
	Important bool          `bson:"important"`
	Date      time.Time     `bson:"date"`
	UpdatedAt *time.Time    `bson:"updated_at,omitempty"`
}
