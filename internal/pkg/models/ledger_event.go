package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerEvent is the audit record emitted for every balance mutation. Kafka
// delivery is flagged on the document so failed publishes can be replayed.
type LedgerEvent struct {
	ID               primitive.ObjectID `bson:"_id"`
	GUID             string             `bson:"GUID"`
	PhoneNumber      string             `bson:"phoneNumber"`
	EventType        string             `bson:"eventType"`
	Amount           int                `bson:"amount"`
	BalanceAfter     int                `bson:"balanceAfter"`
	LoansAfter       int                `bson:"loansAfter"`
	CreditScoreAfter int                `bson:"creditScoreAfter"`
	PublishedToKafka bool               `bson:"publishedToKafka"`
	CreatedAt        time.Time          `bson:"createdAt"`
}
