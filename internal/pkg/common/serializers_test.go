package common

import (
	"testing"
	"time"

	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeLedgerEvent(t *testing.T) {
	user := models.UserLedger{
		ID:          primitive.NewObjectID(),
		PhoneNumber: "9876543210",
		Balance:     1500,
		Loans:       500,
		CreditScore: 720,
	}

	event := SerializeLedgerEvent("9876543210", consts.EventTypeLoan, 500, user)

	assert.Equal(t, "9876543210", event.PhoneNumber)
	assert.Equal(t, consts.EventTypeLoan, event.EventType)
	assert.Equal(t, 500, event.Amount)
	assert.Equal(t, 1500, event.BalanceAfter)
	assert.Equal(t, 500, event.LoansAfter)
	assert.Equal(t, 720, event.CreditScoreAfter)
	assert.False(t, event.PublishedToKafka)
	assert.NotEmpty(t, event.GUID)
	assert.False(t, event.ID.IsZero())
}

func TestFormatLoanHistory(t *testing.T) {
	ts := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	entries := []models.LoanHistoryEntry{
		{PhoneNumber: "9876543210", Amount: 500, Type: consts.EventTypeLoan, Timestamp: ts},
		{PhoneNumber: "9876543210", Amount: 200, Type: consts.EventTypeRepayment, Timestamp: ts.Add(time.Hour)},
	}

	text := FormatLoanHistory(entries)

	assert.Contains(t, text, consts.MsgLoanHistoryHeader)
	assert.Contains(t, text, "₹500 loan on 2026-02-01 10:30:00")
	assert.Contains(t, text, "₹200 repayment on 2026-02-01 11:30:00")
}

func TestFormatLoanHistoryEmpty(t *testing.T) {
	assert.Equal(t, consts.MsgNoLoanHistory, FormatLoanHistory(nil))
}

func TestFormatTransactionHistoryEmpty(t *testing.T) {
	assert.Equal(t, consts.MsgNoTransactions, FormatTransactionHistory(nil))
}

func TestFormatLastLoanDate(t *testing.T) {
	assert.Equal(t, "N/A", FormatLastLoanDate(nil))

	ts := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-01 10:30:00", FormatLastLoanDate(&ts))
}
