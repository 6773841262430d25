package handlers

import (
	"context"
	"net/http"

	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SmsMessageRequest is the inbound message envelope. A missing sessionId
// starts a fresh conversation.
type SmsMessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
}

type SmsMessageResponse struct {
	SessionID string   `json:"sessionId"`
	Reply     string   `json:"reply"`
	Step      string   `json:"step"`
	Warnings  []string `json:"warnings,omitempty"`
}

type SessionStoreInterface interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
}

type SmsMessageHandler struct {
	conversationService services.ConversationServiceInterface
	sessionStore        SessionStoreInterface
}

func NewSmsMessageHandler(conversationService services.ConversationServiceInterface, sessionStore SessionStoreInterface) *SmsMessageHandler {
	return &SmsMessageHandler{
		conversationService: conversationService,
		sessionStore:        sessionStore,
	}
}

// SmsMessage accepts one message, advances the session and returns the reply.
func (h *SmsMessageHandler) SmsMessage(c *gin.Context) {
	var req SmsMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := h.resolveSession(c, req.SessionID)

	result := h.conversationService.Handle(c, session, req.Message)

	if err := h.sessionStore.Save(c, result.Session); err != nil {
		logger.Error(c, "Session save failed for %s: %v", result.Session.SessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SmsMessageResponse{
		SessionID: result.Session.SessionID,
		Reply:     result.Reply,
		Step:      result.Session.CurrentStep,
		Warnings:  result.Warnings,
	})
}

// resolveSession loads the stored session or mints a new one. An expired or
// unknown id silently restarts the conversation, matching what an SMS user
// sees when their session lapses.
func (h *SmsMessageHandler) resolveSession(c *gin.Context, sessionID string) models.Session {
	if sessionID == "" {
		return models.NewSession(uuid.NewString())
	}

	session, err := h.sessionStore.Get(c, sessionID)
	if err != nil {
		if err != consts.ErrorSessionNotFound {
			logger.Error(c, "Session lookup failed for %s: %v", sessionID, err)
		}
		return models.NewSession(sessionID)
	}
	return *session
}
