package handlers

import (
	"net/http"

	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/services"
	"globe/pocketbank_sms/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MsisdnUri binds the path parameter shared by the ledger and transcript
// endpoints. The msisdn rule is registered at router setup.
type MsisdnUri struct {
	MSISDN string `uri:"MSISDN" binding:"required,msisdn"`
}

type ChatHistoryReaderInterface interface {
	MessagesByPhoneNumber(phoneNumber string) ([]models.ChatMessage, error)
}

type LedgerHandler struct {
	userRepo    services.UserLedgerRepoInterface
	historyRepo services.LoanHistoryRepoInterface
	chatRepo    ChatHistoryReaderInterface
}

func NewLedgerHandler(userRepo services.UserLedgerRepoInterface, historyRepo services.LoanHistoryRepoInterface, chatRepo ChatHistoryReaderInterface) *LedgerHandler {
	return &LedgerHandler{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		chatRepo:    chatRepo,
	}
}

// Ledger returns the account snapshot plus its loan history.
func (h *LedgerHandler) Ledger(c *gin.Context) {
	var uri MsisdnUri
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     consts.ErrorPhoneNumberFormatValidationFailed.Error(),
			"errorCode": consts.ErrorPhoneNumberFormatValidationFailed.ErrorCode(),
		})
		return
	}

	user, err := h.userRepo.UserByPhoneNumber(uri.MSISDN)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "errorCode": utils.GetErrorCode(err)})
		return
	}

	entries, err := h.historyRepo.EntriesByPhoneNumber(uri.MSISDN)
	if err != nil {
		logger.Error(c, "Loan history read failed for %s: %v", uri.MSISDN, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phoneNumber": user.PhoneNumber,
		"balance":     user.Balance,
		"loans":       user.Loans,
		"creditScore": user.CreditScore,
		"history":     entries,
	})
}

// SmsHistory returns the conversation transcript oldest first.
func (h *LedgerHandler) SmsHistory(c *gin.Context) {
	var uri MsisdnUri
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     consts.ErrorPhoneNumberFormatValidationFailed.Error(),
			"errorCode": consts.ErrorPhoneNumberFormatValidationFailed.ErrorCode(),
		})
		return
	}

	messages, err := h.chatRepo.MessagesByPhoneNumber(uri.MSISDN)
	if err != nil {
		logger.Error(c, "Chat history read failed for %s: %v", uri.MSISDN, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phoneNumber": uri.MSISDN,
		"messages":    messages,
	})
}
