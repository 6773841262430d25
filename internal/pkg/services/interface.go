package services

import (
	"context"
	"globe/pocketbank_sms/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository seams, satisfied by the store package and mocked in tests.

type UserLedgerRepoInterface interface {
	UserByPhoneNumber(phoneNumber string) (*models.UserLedger, error)
	CreateIfAbsent(ctx context.Context, phoneNumber string, initialBalance, initialCreditScore int) (*models.UserLedger, error)
	UpdateFields(ctx context.Context, phoneNumber string, fields bson.M) error
}

type LoanHistoryRepoInterface interface {
	AppendEntry(ctx context.Context, phoneNumber string, amount int, entryType string) error
	EntriesByPhoneNumber(phoneNumber string) ([]models.LoanHistoryEntry, error)
	TotalByType(phoneNumber string, entryType string) (int, error)
}

type ChatHistoryRepoInterface interface {
	AppendMessage(ctx context.Context, phoneNumber, text, sender string) error
}

type OtpRepoInterface interface {
	SaveOtp(ctx context.Context, phoneNumber string, code int) error
	OtpByPhoneNumber(phoneNumber string) (*models.OtpRecord, error)
}

type LedgerEventRepoInterface interface {
	InsertEvent(ctx context.Context, event models.LedgerEvent) error
	MarkPublished(ctx context.Context, id primitive.ObjectID)
}

type LedgerEventPublisherInterface interface {
	PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error
}

// Service seams consumed by the conversation layer and the handlers.

type BankingServiceInterface interface {
	InitializeAccount(ctx context.Context, phoneNumber string) error
	Balance(ctx context.Context, phoneNumber string) int
	ApplyLoan(ctx context.Context, phoneNumber string, amount, days int) string
	RepayLoan(ctx context.Context, phoneNumber string, amount int) string
	CreditScore(ctx context.Context, phoneNumber string) string
	TotalLoans(ctx context.Context, phoneNumber string) string
	LoanBalance(ctx context.Context, phoneNumber string) string
	LoanDetails(ctx context.Context, phoneNumber string) string
	DueDate(ctx context.Context, phoneNumber string) string
	LoanHistory(ctx context.Context, phoneNumber string) string
	TransactionHistory(ctx context.Context, phoneNumber string) string
}

type OtpServiceInterface interface {
	SendOtp(ctx context.Context, phoneNumber string) string
	VerifyOtp(ctx context.Context, phoneNumber, submittedCode string) (bool, string)
}
