package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is one line of the persisted SMS transcript.
type ChatMessage struct {
	ID          primitive.ObjectID `bson:"_id" json:"-"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Text        string             `bson:"text" json:"text"`
	Sender      string             `bson:"sender" json:"sender"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
