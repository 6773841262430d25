package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserLedger is the per-user document in the Users collection. One record per
// phone number; phoneNumber is set once and never updated afterwards.
type UserLedger struct {
	ID           primitive.ObjectID `bson:"_id"`
	PhoneNumber  string             `bson:"phoneNumber"`
	Balance      int                `bson:"balance"`
	Loans        int                `bson:"loans"`
	CreditScore  int                `bson:"creditScore"`
	LastLoanDate *time.Time         `bson:"lastLoanDate"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    *time.Time         `bson:"updatedAt"`
}
