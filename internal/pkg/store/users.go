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
	"go.mongodb.org/mongo-driver/mongo"
)

type UserLedgerRepository struct {
	repo *MongoRepository[models.UserLedger]
}

func NewUserLedgerRepository() *UserLedgerRepository {
	collection := db.MDB.Database.Collection(consts.UsersCollection)
	mrepo := NewMongoRepository[models.UserLedger](collection)
	return &UserLedgerRepository{repo: mrepo}
}

func (r *UserLedgerRepository) UserByPhoneNumber(phoneNumber string) (*models.UserLedger, error) {
	result, err := r.repo.Read(bson.M{"phoneNumber": phoneNumber})
	if err == mongo.ErrNoDocuments {
		return nil, consts.ErrorUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateIfAbsent inserts a fresh ledger record unless one already exists for
// the phone number. Returns the record either way.
func (r *UserLedgerRepository) CreateIfAbsent(ctx context.Context, phoneNumber string, initialBalance, initialCreditScore int) (*models.UserLedger, error) {
	existing, err := r.repo.Read(bson.M{"phoneNumber": phoneNumber})
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to fetch existing user: %v", err)
	}

	user := models.UserLedger{
		ID:           primitive.NewObjectID(),
		PhoneNumber:  phoneNumber,
		Balance:      initialBalance,
		Loans:        0,
		CreditScore:  initialCreditScore,
		LastLoanDate: nil,
		CreatedAt:    time.Now(),
	}

	_, err = r.repo.Create(user)
	if err != nil {
		// Lost the insert race with another session, fall back to reading.
		if mongo.IsDuplicateKeyError(err) {
			existing, rerr := r.repo.Read(bson.M{"phoneNumber": phoneNumber})
			if rerr != nil {
				return nil, rerr
			}
			return &existing, nil
		}
		logger.Error(ctx, "Users : error while inserting %v", err.Error())
		return nil, fmt.Errorf("failed to insert new user: %v", err)
	}

	return &user, nil
}

// UpdateFields applies a partial update to the user's ledger record.
// phoneNumber is never part of the update set.
func (r *UserLedgerRepository) UpdateFields(ctx context.Context, phoneNumber string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	err := r.repo.Update(bson.M{"phoneNumber": phoneNumber}, fields)
	if err != nil {
		logger.Error(ctx, "Users : error while updating %v", err.Error())
		return fmt.Errorf("failed to update user: %v", err)
	}
	return nil
}
