package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"globe/pocketbank_sms/configs"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/services"
	"globe/pocketbank_sms/internal/pkg/utils/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newLedgerUser(phoneNumber string, balance, loans, creditScore int) *models.UserLedger {
	return &models.UserLedger{
		ID:          primitive.NewObjectID(),
		PhoneNumber: phoneNumber,
		Balance:     balance,
		Loans:       loans,
		CreditScore: creditScore,
		CreatedAt:   time.Now(),
	}
}

func TestApplyLoanScorePolicy(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()

	tests := []struct {
		name          string
		amount        int
		days          int
		user          *models.UserLedger
		setupMocks    func(*MockUserLedgerRepo, *MockLoanHistoryRepo, *MockLedgerEventRepo)
		expectedReply string
	}{
		{
			name:   "Denied Below Score Floor",
			amount: 100,
			days:   5,
			user:   newLedgerUser("9876543210", 1000, 0, 400),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
			},
			expectedReply: consts.MsgLoanDeniedScore,
		},
		{
			name:   "Approved Above Auto Approve Band Any Amount",
			amount: 999999,
			days:   5,
			user:   newLedgerUser("9876543210", 1000, 0, 800),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
				ur.On("UpdateFields", mock.Anything, "9876543210", mock.Anything).Return(nil)
				hr.On("AppendEntry", mock.Anything, "9876543210", 999999, consts.EventTypeLoan).Return(nil)
				er.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)
			},
			expectedReply: fmt.Sprintf(consts.MsgLoanApproved, 999999, 1000999),
		},
		{
			name:   "Approved Mid Range At Limit",
			amount: 5000,
			days:   5,
			user:   newLedgerUser("9876543210", 1000, 0, 600),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
				ur.On("UpdateFields", mock.Anything, "9876543210", mock.Anything).Return(nil)
				hr.On("AppendEntry", mock.Anything, "9876543210", 5000, consts.EventTypeLoan).Return(nil)
				er.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)
			},
			expectedReply: fmt.Sprintf(consts.MsgLoanApproved, 5000, 6000),
		},
		{
			name:   "Denied Mid Range Above Limit",
			amount: 5001,
			days:   5,
			user:   newLedgerUser("9876543210", 1000, 0, 600),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
			},
			expectedReply: consts.MsgLoanDeniedScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserLedgerRepo)
			historyRepo := new(MockLoanHistoryRepo)
			eventRepo := new(MockLedgerEventRepo)
			userRepo.On("UserByPhoneNumber", "9876543210").Return(tt.user, nil)
			tt.setupMocks(userRepo, historyRepo, eventRepo)

			workerPool := worker.NewWorkerPool(1)
			defer workerPool.Stop()

			policy := services.NewLoanPolicy(services.LoanPolicyScore, cfg)
			svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, nil, policy, cfg)

			reply := svc.ApplyLoan(context.Background(), "9876543210", tt.amount, tt.days)

			assert.Equal(t, tt.expectedReply, reply)
			userRepo.AssertExpectations(t)
			historyRepo.AssertExpectations(t)
			eventRepo.AssertExpectations(t)
		})
	}
}

func TestApplyLoanDailyPolicy(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy(services.LoanPolicyDaily, cfg)

	t.Run("Approved With Interest", func(t *testing.T) {
		userRepo := new(MockUserLedgerRepo)
		historyRepo := new(MockLoanHistoryRepo)
		eventRepo := new(MockLedgerEventRepo)

		userRepo.On("UserByPhoneNumber", "9876543210").Return(newLedgerUser("9876543210", 1000, 0, 750), nil)
		userRepo.On("UpdateFields", mock.Anything, "9876543210", mock.Anything).Return(nil)
		historyRepo.On("AppendEntry", mock.Anything, "9876543210", 500, consts.EventTypeLoan).Return(nil)
		eventRepo.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)

		workerPool := worker.NewWorkerPool(1)
		defer workerPool.Stop()

		svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, nil, policy, cfg)

		reply := svc.ApplyLoan(context.Background(), "9876543210", 500, 10)

		// 500 * 0.05 * 10 = 250 interest, 750 total
		assert.Equal(t, fmt.Sprintf(consts.MsgLoanApprovedInterest, 500, 10, 750.0, 250.0, 1500), reply)
		userRepo.AssertExpectations(t)
	})

	t.Run("Denied Over Cap Same Day", func(t *testing.T) {
		userRepo := new(MockUserLedgerRepo)
		historyRepo := new(MockLoanHistoryRepo)
		eventRepo := new(MockLedgerEventRepo)

		lastLoan := time.Now()
		user := newLedgerUser("9876543210", 1000, 500, 750)
		user.LastLoanDate = &lastLoan
		userRepo.On("UserByPhoneNumber", "9876543210").Return(user, nil)

		workerPool := worker.NewWorkerPool(1)
		defer workerPool.Stop()

		svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, nil, policy, cfg)

		reply := svc.ApplyLoan(context.Background(), "9876543210", 501, 1)

		assert.Equal(t, fmt.Sprintf(consts.MsgLoanDeniedDailyCap, 500), reply)
	})

	t.Run("Cap Does Not Apply Next Day", func(t *testing.T) {
		userRepo := new(MockUserLedgerRepo)
		historyRepo := new(MockLoanHistoryRepo)
		eventRepo := new(MockLedgerEventRepo)

		lastLoan := time.Now().AddDate(0, 0, -1)
		user := newLedgerUser("9876543210", 1000, 500, 750)
		user.LastLoanDate = &lastLoan
		userRepo.On("UserByPhoneNumber", "9876543210").Return(user, nil)
		userRepo.On("UpdateFields", mock.Anything, "9876543210", mock.Anything).Return(nil)
		historyRepo.On("AppendEntry", mock.Anything, "9876543210", 600, consts.EventTypeLoan).Return(nil)
		eventRepo.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)

		workerPool := worker.NewWorkerPool(1)
		defer workerPool.Stop()

		svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, nil, policy, cfg)

		reply := svc.ApplyLoan(context.Background(), "9876543210", 600, 2)

		// 600 * 0.05 * 2 = 60 interest, 660 total
		assert.Equal(t, fmt.Sprintf(consts.MsgLoanApprovedInterest, 600, 2, 660.0, 60.0, 1600), reply)
	})
}

func TestRepayLoan(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy(services.LoanPolicyScore, cfg)

	tests := []struct {
		name          string
		amount        int
		user          *models.UserLedger
		setupMocks    func(*MockUserLedgerRepo, *MockLoanHistoryRepo, *MockLedgerEventRepo)
		expectedReply string
	}{
		{
			name:   "Over Repayment Rejected",
			amount: 300,
			user:   newLedgerUser("9876543210", 1000, 200, 700),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
			},
			expectedReply: consts.MsgRepayTooMuch,
		},
		{
			name:   "Successful Repayment Bumps Score",
			amount: 200,
			user:   newLedgerUser("9876543210", 1000, 500, 700),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
				ur.On("UpdateFields", mock.Anything, "9876543210", bson.M{
					"loans":       300,
					"balance":     800,
					"creditScore": 720,
				}).Return(nil)
				hr.On("AppendEntry", mock.Anything, "9876543210", 200, consts.EventTypeRepayment).Return(nil)
				er.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)
			},
			expectedReply: fmt.Sprintf(consts.MsgRepaySuccess, 200, 300, 720),
		},
		{
			name:   "Score Capped At Ceiling",
			amount: 100,
			user:   newLedgerUser("9876543210", 1000, 100, 845),
			setupMocks: func(ur *MockUserLedgerRepo, hr *MockLoanHistoryRepo, er *MockLedgerEventRepo) {
				ur.On("UpdateFields", mock.Anything, "9876543210", bson.M{
					"loans":       0,
					"balance":     900,
					"creditScore": 850,
				}).Return(nil)
				hr.On("AppendEntry", mock.Anything, "9876543210", 100, consts.EventTypeRepayment).Return(nil)
				er.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)
			},
			expectedReply: fmt.Sprintf(consts.MsgRepaySuccess, 100, 0, 850),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserLedgerRepo)
			historyRepo := new(MockLoanHistoryRepo)
			eventRepo := new(MockLedgerEventRepo)
			userRepo.On("UserByPhoneNumber", "9876543210").Return(tt.user, nil)
			tt.setupMocks(userRepo, historyRepo, eventRepo)

			workerPool := worker.NewWorkerPool(1)
			defer workerPool.Stop()

			svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, nil, policy, cfg)

			reply := svc.RepayLoan(context.Background(), "9876543210", tt.amount)

			assert.Equal(t, tt.expectedReply, reply)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestApplyLoanPublishesLedgerEvent(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy(services.LoanPolicyScore, cfg)

	userRepo := new(MockUserLedgerRepo)
	historyRepo := new(MockLoanHistoryRepo)
	eventRepo := new(MockLedgerEventRepo)
	publisher := new(MockLedgerEventPublisher)

	userRepo.On("UserByPhoneNumber", "9876543210").Return(newLedgerUser("9876543210", 1000, 0, 800), nil)
	userRepo.On("UpdateFields", mock.Anything, "9876543210", mock.Anything).Return(nil)
	historyRepo.On("AppendEntry", mock.Anything, "9876543210", 100, consts.EventTypeLoan).Return(nil)
	eventRepo.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)
	publisher.On("PublishLedgerEvent", mock.Anything, mock.Anything).Return(nil)

	published := make(chan struct{})
	eventRepo.On("MarkPublished", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		close(published)
	}).Return()

	workerPool := worker.NewWorkerPool(1)
	defer workerPool.Stop()

	svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, publisher, policy, cfg)

	reply := svc.ApplyLoan(context.Background(), "9876543210", 100, 1)
	assert.Equal(t, fmt.Sprintf(consts.MsgLoanApproved, 100, 1100), reply)

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("ledger event was never marked published")
	}
	publisher.AssertExpectations(t)
}

func TestBalanceAndReads(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy(services.LoanPolicyScore, cfg)

	userRepo := new(MockUserLedgerRepo)
	historyRepo := new(MockLoanHistoryRepo)
	eventRepo := new(MockLedgerEventRepo)

	userRepo.On("UserByPhoneNumber", "9876543210").Return(newLedgerUser("9876543210", 1250, 400, 710), nil)
	historyRepo.On("TotalByType", "9876543210", consts.EventTypeLoan).Return(900, nil)

	workerPool := worker.NewWorkerPool(1)
	defer workerPool.Stop()

	svc := services.NewBankingService(workerPool, userRepo, historyRepo, eventRepo, nil, policy, cfg)
	ctx := context.Background()

	assert.Equal(t, 1250, svc.Balance(ctx, "9876543210"))
	assert.Equal(t, fmt.Sprintf(consts.MsgCreditScore, 710), svc.CreditScore(ctx, "9876543210"))
	assert.Equal(t, fmt.Sprintf(consts.MsgLoanBalance, 400), svc.LoanBalance(ctx, "9876543210"))
	assert.Equal(t, fmt.Sprintf(consts.MsgTotalLoans, 900), svc.TotalLoans(ctx, "9876543210"))
	assert.Equal(t, consts.MsgDueDate, svc.DueDate(ctx, "9876543210"))
}

func TestInitializeAccountSeedsPolicyDefaults(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy(services.LoanPolicyScore, cfg)

	userRepo := new(MockUserLedgerRepo)
	userRepo.On("CreateIfAbsent", mock.Anything, "9876543210", 1000, 700).
		Return(newLedgerUser("9876543210", 1000, 0, 700), nil)

	workerPool := worker.NewWorkerPool(1)
	defer workerPool.Stop()

	svc := services.NewBankingService(workerPool, userRepo, new(MockLoanHistoryRepo), new(MockLedgerEventRepo), nil, policy, cfg)

	err := svc.InitializeAccount(context.Background(), "9876543210")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
