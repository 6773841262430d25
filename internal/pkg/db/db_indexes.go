package db

import (
	"context"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexesIfNotExists sets up the lookup indexes the service depends on.
// One ledger record per phone number is enforced here rather than in code.
// The Otps collection deliberately carries no TTL index: a code stays valid
// until the next send overwrites it.
func CreateIndexesIfNotExists() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		consts.UsersCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		consts.OtpCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		consts.LoanHistoryCollection: {
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		consts.ChatHistoryCollection: {
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
		consts.LedgerEventsCollection: {
			{Keys: bson.D{{Key: "publishedToKafka", Value: 1}}},
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		_, err := MDB.Database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			logger.Error(ctx, "Failed to create indexes for %s: %v", collection, err)
		}
	}
}
