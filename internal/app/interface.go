package app

import (
	"context"
)

type KafkaRetryService interface {
	RetryLedgerEventMessages(context.Context) ([]string, []string, error)
}
