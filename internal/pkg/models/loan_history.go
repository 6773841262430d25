package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanHistoryEntry is append-only. Type is one of consts.EventTypeLoan or
// consts.EventTypeRepayment.
type LoanHistoryEntry struct {
	ID          primitive.ObjectID `bson:"_id" json:"-"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Amount      int                `bson:"amount" json:"amount"`
	Type        string             `bson:"type" json:"type"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
