package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OtpRecord is overwritten on every send. No TTL is enforced on the
// collection; a code stays valid until the next one replaces it.
type OtpRecord struct {
	ID          primitive.ObjectID `bson:"_id"`
	PhoneNumber string             `bson:"phoneNumber"`
	Code        int                `bson:"code"`
	IssuedAt    time.Time          `bson:"issuedAt"`
}
