package store

import (
	"context"
	"fmt"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/db"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LedgerEventRepository struct {
	repo *MongoRepository[models.LedgerEvent]
}

func NewLedgerEventRepository() *LedgerEventRepository {
	collection := db.MDB.Database.Collection(consts.LedgerEventsCollection)
	mrepo := NewMongoRepository[models.LedgerEvent](collection)
	return &LedgerEventRepository{repo: mrepo}
}

func (r *LedgerEventRepository) InsertEvent(ctx context.Context, event models.LedgerEvent) error {
	_, err := r.repo.Create(event)
	if err != nil {
		logger.Error(ctx, "LedgerEvents : error while inserting %v", err.Error())
		return fmt.Errorf("LedgerEvents : error while inserting %v", err.Error())
	}
	return nil
}

func (r *LedgerEventRepository) MarkPublished(ctx context.Context, id primitive.ObjectID) {
	err := r.repo.Update(bson.M{"_id": id}, bson.M{"publishedToKafka": true})
	if err != nil {
		logger.Error(ctx, "LedgerEvents : error while marking published %v", err.Error())
	}
}

// UnpublishedEvents returns events whose Kafka publish has not succeeded yet,
// oldest first so replay preserves order.
func (r *LedgerEventRepository) UnpublishedEvents() ([]models.LedgerEvent, error) {
	filter := bson.M{"publishedToKafka": false}
	sort := bson.D{{Key: "createdAt", Value: 1}}
	return r.repo.FindAllSorted(filter, sort)
}
