package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"globe/pocketbank_sms/configs"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/pubsub"
	"time"
)

type NotificationServiceInterface interface {
	NotifyUser(ctx context.Context, phoneNumber string, event string, text string) error
}

// NotificationService pushes outbound "SMS" texts to the notification topic.
// The downstream gateway is simulated; delivery is best effort.
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifyUser publishes one outbound SMS for the given event.
func (h *NotificationService) NotifyUser(ctx context.Context, phoneNumber string, event string, text string) error {
	smsRequest := models.SmsNotificationRequest{
		Msisdn:         phoneNumber,
		SourceAddress:  configs.SMS_SOURCE_ADDRESS,
		SmsDbEventName: event,
		MessageText:    text,
	}

	payloadBytes, err := json.Marshal(smsRequest)
	if err != nil {
		logger.Error(ctx, "Failed to marshal SMS notification request: %v", err)
		return fmt.Errorf("failed to marshal SMS request: %w", err)
	}

	topicName := configs.PUBSUB_TOPIC

	// Separate context with timeout so a cancelled request context does not
	// drop the notification mid-publish.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, nil)
	if err != nil {
		logger.Error(ctx, "Failed to publish SMS notification to PubSub topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "NotifyUser phoneNumber: %v event: %v messageID: %v", phoneNumber, event, messageID)
	return nil
}
