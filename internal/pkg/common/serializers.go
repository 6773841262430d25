package common

import (
	"fmt"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func SerializeLedgerEvent(phoneNumber string, eventType string, amount int, user models.UserLedger) models.LedgerEvent {
	return models.LedgerEvent{
		ID:               primitive.NewObjectID(),
		GUID:             uuid.NewString(),
		PhoneNumber:      phoneNumber,
		EventType:        eventType,
		Amount:           amount,
		BalanceAfter:     user.Balance,
		LoansAfter:       user.Loans,
		CreditScoreAfter: user.CreditScore,
		PublishedToKafka: false,
		CreatedAt:        time.Now(),
	}
}

// FormatLoanHistory renders loan history entries newest first as reply text.
func FormatLoanHistory(entries []models.LoanHistoryEntry) string {
	if len(entries) == 0 {
		return consts.MsgNoLoanHistory
	}

	var b strings.Builder
	b.WriteString(consts.MsgLoanHistoryHeader)
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf(" - ₹%d %s on %s\n", entry.Amount, entry.Type, entry.Timestamp.Format(consts.DateFormat)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatTransactionHistory renders the transaction listing newest first.
func FormatTransactionHistory(entries []models.LoanHistoryEntry) string {
	if len(entries) == 0 {
		return consts.MsgNoTransactions
	}

	var b strings.Builder
	b.WriteString(consts.MsgTransactionsHeader)
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf(" - ₹%d %s on %s\n", entry.Amount, entry.Type, entry.Timestamp.Format(consts.DateFormat)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatLastLoanDate renders a nullable loan date for reply text.
func FormatLastLoanDate(lastLoanDate *time.Time) string {
	if lastLoanDate == nil {
		return "N/A"
	}
	return lastLoanDate.Format(consts.DateFormat)
}
