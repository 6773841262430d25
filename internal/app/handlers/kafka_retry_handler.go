package handlers

import (
	"net/http"

	app "globe/pocketbank_sms/internal/app"

	"github.com/gin-gonic/gin"
)

type KafkaRetryHandler struct {
	service app.KafkaRetryService
}

func NewKafkaRetryHandler(service app.KafkaRetryService) *KafkaRetryHandler {
	return &KafkaRetryHandler{service: service}
}

// RetryLedgerEventMessages replays ledger events that never reached Kafka.
func (h *KafkaRetryHandler) RetryLedgerEventMessages(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "kafka retry service not initialized"})
		return
	}

	successIDs, failedIDs, err := h.service.RetryLedgerEventMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"successMessages": successIDs, "failedMessages": failedIDs})
}
