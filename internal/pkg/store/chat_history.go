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

type ChatHistoryRepository struct {
	repo *MongoRepository[models.ChatMessage]
}

func NewChatHistoryRepository() *ChatHistoryRepository {
	collection := db.MDB.Database.Collection(consts.ChatHistoryCollection)
	mrepo := NewMongoRepository[models.ChatMessage](collection)
	return &ChatHistoryRepository{repo: mrepo}
}

// AppendMessage persists one transcript line. Failures are returned to the
// caller, not swallowed; the conversation layer reports them as warnings.
func (r *ChatHistoryRepository) AppendMessage(ctx context.Context, phoneNumber, text, sender string) error {
	message := models.ChatMessage{
		ID:          primitive.NewObjectID(),
		PhoneNumber: phoneNumber,
		Text:        text,
		Sender:      sender,
		Timestamp:   time.Now(),
	}

	_, err := r.repo.Create(message)
	if err != nil {
		logger.Error(ctx, "ChatHistory : error while inserting %v", err.Error())
		return fmt.Errorf("ChatHistory : error while inserting %v", err.Error())
	}
	return nil
}

// MessagesByPhoneNumber returns the transcript oldest first, the order a chat
// UI renders it.
func (r *ChatHistoryRepository) MessagesByPhoneNumber(phoneNumber string) ([]models.ChatMessage, error) {
	filter := bson.M{"phoneNumber": phoneNumber}
	sort := bson.D{{Key: "timestamp", Value: 1}}
	return r.repo.FindAllSorted(filter, sort)
}
