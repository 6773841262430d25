package tests

import (
	"context"

	"globe/pocketbank_sms/internal/pkg/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserLedgerRepo struct {
	mock.Mock
}

func (m *MockUserLedgerRepo) UserByPhoneNumber(phoneNumber string) (*models.UserLedger, error) {
	args := m.Called(phoneNumber)
	var user *models.UserLedger
	if args.Get(0) != nil {
		user = args.Get(0).(*models.UserLedger)
	}
	return user, args.Error(1)
}

func (m *MockUserLedgerRepo) CreateIfAbsent(ctx context.Context, phoneNumber string, initialBalance, initialCreditScore int) (*models.UserLedger, error) {
	args := m.Called(ctx, phoneNumber, initialBalance, initialCreditScore)
	var user *models.UserLedger
	if args.Get(0) != nil {
		user = args.Get(0).(*models.UserLedger)
	}
	return user, args.Error(1)
}

func (m *MockUserLedgerRepo) UpdateFields(ctx context.Context, phoneNumber string, fields bson.M) error {
	args := m.Called(ctx, phoneNumber, fields)
	return args.Error(0)
}

type MockLoanHistoryRepo struct {
	mock.Mock
}

func (m *MockLoanHistoryRepo) AppendEntry(ctx context.Context, phoneNumber string, amount int, entryType string) error {
	args := m.Called(ctx, phoneNumber, amount, entryType)
	return args.Error(0)
}

func (m *MockLoanHistoryRepo) EntriesByPhoneNumber(phoneNumber string) ([]models.LoanHistoryEntry, error) {
	args := m.Called(phoneNumber)
	var entries []models.LoanHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]models.LoanHistoryEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLoanHistoryRepo) TotalByType(phoneNumber string, entryType string) (int, error) {
	args := m.Called(phoneNumber, entryType)
	return args.Int(0), args.Error(1)
}

type MockChatHistoryRepo struct {
	mock.Mock
}

func (m *MockChatHistoryRepo) AppendMessage(ctx context.Context, phoneNumber, text, sender string) error {
	args := m.Called(ctx, phoneNumber, text, sender)
	return args.Error(0)
}

type MockOtpRepo struct {
	mock.Mock
}

func (m *MockOtpRepo) SaveOtp(ctx context.Context, phoneNumber string, code int) error {
	args := m.Called(ctx, phoneNumber, code)
	return args.Error(0)
}

func (m *MockOtpRepo) OtpByPhoneNumber(phoneNumber string) (*models.OtpRecord, error) {
	args := m.Called(phoneNumber)
	var record *models.OtpRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*models.OtpRecord)
	}
	return record, args.Error(1)
}

type MockLedgerEventRepo struct {
	mock.Mock
}

func (m *MockLedgerEventRepo) InsertEvent(ctx context.Context, event models.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLedgerEventRepo) MarkPublished(ctx context.Context, id primitive.ObjectID) {
	m.Called(ctx, id)
}

type MockLedgerEventPublisher struct {
	mock.Mock
}

func (m *MockLedgerEventPublisher) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyUser(ctx context.Context, phoneNumber string, event string, text string) error {
	args := m.Called(ctx, phoneNumber, event, text)
	return args.Error(0)
}

type MockBankingService struct {
	mock.Mock
}

func (m *MockBankingService) InitializeAccount(ctx context.Context, phoneNumber string) error {
	args := m.Called(ctx, phoneNumber)
	return args.Error(0)
}

func (m *MockBankingService) Balance(ctx context.Context, phoneNumber string) int {
	args := m.Called(ctx, phoneNumber)
	return args.Int(0)
}

func (m *MockBankingService) ApplyLoan(ctx context.Context, phoneNumber string, amount, days int) string {
	args := m.Called(ctx, phoneNumber, amount, days)
	return args.String(0)
}

func (m *MockBankingService) RepayLoan(ctx context.Context, phoneNumber string, amount int) string {
	args := m.Called(ctx, phoneNumber, amount)
	return args.String(0)
}

func (m *MockBankingService) CreditScore(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockBankingService) TotalLoans(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockBankingService) LoanBalance(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockBankingService) LoanDetails(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockBankingService) DueDate(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockBankingService) LoanHistory(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockBankingService) TransactionHistory(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

type MockOtpService struct {
	mock.Mock
}

func (m *MockOtpService) SendOtp(ctx context.Context, phoneNumber string) string {
	args := m.Called(ctx, phoneNumber)
	return args.String(0)
}

func (m *MockOtpService) VerifyOtp(ctx context.Context, phoneNumber, submittedCode string) (bool, string) {
	args := m.Called(ctx, phoneNumber, submittedCode)
	return args.Bool(0), args.String(1)
}
