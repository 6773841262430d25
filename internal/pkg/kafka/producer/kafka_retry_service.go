package producer

import (
	"context"
	"fmt"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LedgerEventStoreInterface interface {
	UnpublishedEvents() ([]models.LedgerEvent, error)
	MarkPublished(ctx context.Context, id primitive.ObjectID)
}

type LedgerPublisherInterface interface {
	PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error
}

// KafkaRetryService replays ledger events whose original publish failed.
// Events are flagged on insert and cleared once a publish succeeds. Each
// event gets up to retryCount publish attempts per replay pass.
type KafkaRetryService struct {
	publisher  LedgerPublisherInterface
	eventStore LedgerEventStoreInterface
	retryCount int
}

func NewKafkaRetryService(publisher LedgerPublisherInterface, eventStore LedgerEventStoreInterface, retryCount int) *KafkaRetryService {
	if retryCount < 1 {
		retryCount = 1
	}
	return &KafkaRetryService{
		publisher:  publisher,
		eventStore: eventStore,
		retryCount: retryCount,
	}
}

func (ks *KafkaRetryService) RetryLedgerEventMessages(ctx context.Context) ([]string, []string, error) {
	if ks.publisher == nil {
		return nil, nil, fmt.Errorf("kafka producer not initialized")
	}

	events, err := ks.eventStore.UnpublishedEvents()
	if err != nil {
		return nil, nil, err
	}
	if len(events) == 0 {
		return nil, nil, consts.ErrorNoDocumentFound
	}

	var successIDs []string
	var failedIDs []string
	for _, event := range events {
		if !ks.publishWithRetry(ctx, event) {
			failedIDs = append(failedIDs, event.GUID)
			continue
		}
		ks.eventStore.MarkPublished(ctx, event.ID)
		successIDs = append(successIDs, event.GUID)
	}

	return successIDs, failedIDs, nil
}

func (ks *KafkaRetryService) publishWithRetry(ctx context.Context, event models.LedgerEvent) bool {
	var err error
	for attempt := 1; attempt <= ks.retryCount; attempt++ {
		if err = ks.publisher.PublishLedgerEvent(ctx, event); err == nil {
			return true
		}
	}
	logger.Error(ctx, "Retry publish failed for ledger event %s after %d attempts: %v", event.GUID, ks.retryCount, err)
	return false
}
