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
	"go.mongodb.org/mongo-driver/mongo"
)

type OtpRepository struct {
	repo *MongoRepository[models.OtpRecord]
}

func NewOtpRepository() *OtpRepository {
	collection := db.MDB.Database.Collection(consts.OtpCollection)
	mrepo := NewMongoRepository[models.OtpRecord](collection)
	return &OtpRepository{repo: mrepo}
}

// SaveOtp overwrites any prior code for the phone number.
func (r *OtpRepository) SaveOtp(ctx context.Context, phoneNumber string, code int) error {
	filter := bson.M{"phoneNumber": phoneNumber}
	update := bson.M{"$set": bson.M{
		"phoneNumber": phoneNumber,
		"code":        code,
		"issuedAt":    time.Now(),
	}}

	err := r.repo.Upsert(filter, update)
	if err != nil {
		logger.Error(ctx, "Otps : error while upserting %v", err.Error())
		return fmt.Errorf("failed to save OTP: %v", err)
	}
	return nil
}

func (r *OtpRepository) OtpByPhoneNumber(phoneNumber string) (*models.OtpRecord, error) {
	result, err := r.repo.Read(bson.M{"phoneNumber": phoneNumber})
	if err == mongo.ErrNoDocuments {
		return nil, consts.ErrorOtpNotFound
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}
