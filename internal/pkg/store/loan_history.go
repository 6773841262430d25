package store

import (
	"context"
	"fmt"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/db"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LoanHistoryRepository struct {
	repo *MongoRepository[models.LoanHistoryEntry]
}

func NewLoanHistoryRepository() *LoanHistoryRepository {
	collection := db.MDB.Database.Collection(consts.LoanHistoryCollection)
	mrepo := NewMongoRepository[models.LoanHistoryEntry](collection)
	return &LoanHistoryRepository{repo: mrepo}
}

func (r *LoanHistoryRepository) AppendEntry(ctx context.Context, phoneNumber string, amount int, entryType string) error {
	entry := models.LoanHistoryEntry{
		ID:          primitive.NewObjectID(),
		PhoneNumber: phoneNumber,
		Amount:      amount,
		Type:        entryType,
		Timestamp:   time.Now(),
	}

	_, err := r.repo.Create(entry)
	if err != nil {
		logger.Error(ctx, "LoanHistory : error while inserting %v", err.Error())
		return fmt.Errorf("LoanHistory : error while inserting %v", err.Error())
	}
	return nil
}

// EntriesByPhoneNumber returns the history newest first.
func (r *LoanHistoryRepository) EntriesByPhoneNumber(phoneNumber string) ([]models.LoanHistoryEntry, error) {
	filter := bson.M{"phoneNumber": phoneNumber}
	sort := bson.D{{Key: "timestamp", Value: -1}}
	return r.repo.FindAllSorted(filter, sort)
}

// TotalByType sums the amounts of all entries of the given type.
func (r *LoanHistoryRepository) TotalByType(phoneNumber string, entryType string) (int, error) {
	entries, err := r.repo.FindAllSorted(bson.M{"phoneNumber": phoneNumber, "type": entryType}, nil)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, entry := range entries {
		total += entry.Amount
	}
	return total, nil
}
