package services

import (
	"context"
	"fmt"
	"globe/pocketbank_sms/configs"
	"globe/pocketbank_sms/internal/pkg/common"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/utils/worker"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BankingService owns every ledger mutation and read. All operations fail
// soft: store errors are logged and come back as user-facing reply text, the
// session never sees a raw fault.
type BankingService struct {
	workerPool  *worker.WorkerPool
	userRepo    UserLedgerRepoInterface
	historyRepo LoanHistoryRepoInterface
	eventRepo   LedgerEventRepoInterface
	producer    LedgerEventPublisherInterface
	policy      LoanPolicy
	policyCfg   configs.PolicyConfig
}

func NewBankingService(workerPool *worker.WorkerPool, userRepo UserLedgerRepoInterface, historyRepo LoanHistoryRepoInterface, eventRepo LedgerEventRepoInterface, producer LedgerEventPublisherInterface, policy LoanPolicy, policyCfg configs.PolicyConfig) *BankingService {
	return &BankingService{
		workerPool:  workerPool,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		eventRepo:   eventRepo,
		producer:    producer,
		policy:      policy,
		policyCfg:   policyCfg,
	}
}

// InitializeAccount creates the ledger record on first login. Idempotent.
func (h *BankingService) InitializeAccount(ctx context.Context, phoneNumber string) error {
	_, err := h.userRepo.CreateIfAbsent(ctx, phoneNumber, h.policyCfg.InitialBalance, h.policy.InitialCreditScore())
	if err != nil {
		logger.Error(ctx, "Error initializing user: %v", err)
		return err
	}
	return nil
}

// Balance returns the current balance, or 0 when the record is absent or the
// read fails.
func (h *BankingService) Balance(ctx context.Context, phoneNumber string) int {
	user, err := h.userRepo.UserByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error fetching user balance: %v", err)
		return 0
	}
	return user.Balance
}

// ApplyLoan runs the configured approval policy and, on approval, credits the
// proceeds to the balance and stamps the loan date.
func (h *BankingService) ApplyLoan(ctx context.Context, phoneNumber string, amount, days int) string {
	user, err := h.userRepo.UserByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error applying for loan: %v", err)
		return consts.MsgUserNotFound
	}

	now := time.Now()
	decision := h.policy.Evaluate(*user, amount, days, now)
	if !decision.Approved {
		logger.Info(ctx, "Loan denied for %s: %s", phoneNumber, decision.DenialError.ErrorCode())
		return decision.DenialMessage
	}

	newLoans := user.Loans + amount
	newBalance := user.Balance + amount

	err = h.userRepo.UpdateFields(ctx, phoneNumber, bson.M{
		"loans":        newLoans,
		"balance":      newBalance,
		"lastLoanDate": now,
	})
	if err != nil {
		logger.Error(ctx, "Error applying for loan: %v", err)
		return consts.MsgLoanFailed
	}

	if err := h.historyRepo.AppendEntry(ctx, phoneNumber, amount, consts.EventTypeLoan); err != nil {
		logger.Error(ctx, "Loan history write failed for %s: %v", phoneNumber, err)
	}

	updated := *user
	updated.Loans = newLoans
	updated.Balance = newBalance
	h.emitLedgerEvent(ctx, phoneNumber, consts.EventTypeLoan, amount, updated)

	return h.policy.ApprovalMessage(amount, days, newBalance, decision)
}

// RepayLoan debits the balance and outstanding loan amount, rejecting any
// repayment that would drive the loan negative. Each successful repayment
// lifts the credit score by a fixed step, capped at the ceiling.
func (h *BankingService) RepayLoan(ctx context.Context, phoneNumber string, amount int) string {
	user, err := h.userRepo.UserByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error repaying loan: %v", err)
		return consts.MsgUserNotFound
	}

	if amount > user.Loans {
		logger.Info(ctx, "Over-repayment rejected for %s: %s", phoneNumber, consts.ErrorOverRepayment.ErrorCode())
		return consts.MsgRepayTooMuch
	}

	newLoans := user.Loans - amount
	newBalance := user.Balance - amount
	newCreditScore := user.CreditScore + h.policyCfg.ScoreRepaymentStep
	if newCreditScore > h.policyCfg.ScoreCeiling {
		newCreditScore = h.policyCfg.ScoreCeiling
	}

	err = h.userRepo.UpdateFields(ctx, phoneNumber, bson.M{
		"loans":       newLoans,
		"balance":     newBalance,
		"creditScore": newCreditScore,
	})
	if err != nil {
		logger.Error(ctx, "Error repaying loan: %v", err)
		return consts.MsgRepayFailed
	}

	if err := h.historyRepo.AppendEntry(ctx, phoneNumber, amount, consts.EventTypeRepayment); err != nil {
		logger.Error(ctx, "Loan history write failed for %s: %v", phoneNumber, err)
	}

	updated := *user
	updated.Loans = newLoans
	updated.Balance = newBalance
	updated.CreditScore = newCreditScore
	h.emitLedgerEvent(ctx, phoneNumber, consts.EventTypeRepayment, amount, updated)

	return fmt.Sprintf(consts.MsgRepaySuccess, amount, newLoans, newCreditScore)
}

func (h *BankingService) CreditScore(ctx context.Context, phoneNumber string) string {
	user, err := h.userRepo.UserByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error fetching credit score: %v", err)
		return consts.MsgUserNotFound
	}
	return fmt.Sprintf(consts.MsgCreditScore, user.CreditScore)
}

// TotalLoans sums every loan ever taken, not the outstanding amount.
func (h *BankingService) TotalLoans(ctx context.Context, phoneNumber string) string {
	total, err := h.historyRepo.TotalByType(phoneNumber, consts.EventTypeLoan)
	if err != nil {
		logger.Error(ctx, "Error fetching total loans: %v", err)
		return consts.MsgStoreFailure
	}
	return fmt.Sprintf(consts.MsgTotalLoans, total)
}

func (h *BankingService) LoanBalance(ctx context.Context, phoneNumber string) string {
	user, err := h.userRepo.UserByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error fetching loan balance: %v", err)
		return consts.MsgUserNotFound
	}
	return fmt.Sprintf(consts.MsgLoanBalance, user.Loans)
}

func (h *BankingService) LoanDetails(ctx context.Context, phoneNumber string) string {
	user, err := h.userRepo.UserByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error fetching loan details: %v", err)
		return consts.MsgUserNotFound
	}
	return fmt.Sprintf(consts.MsgLoanDetails, user.Loans, common.FormatLastLoanDate(user.LastLoanDate), user.CreditScore)
}

// DueDate is a canned response. No due date is stored anywhere; the feature
// never got past this placeholder.
func (h *BankingService) DueDate(ctx context.Context, phoneNumber string) string {
	return consts.MsgDueDate
}

func (h *BankingService) LoanHistory(ctx context.Context, phoneNumber string) string {
	entries, err := h.historyRepo.EntriesByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error fetching loan history: %v", err)
		return consts.MsgStoreFailure
	}
	return common.FormatLoanHistory(entries)
}

func (h *BankingService) TransactionHistory(ctx context.Context, phoneNumber string) string {
	entries, err := h.historyRepo.EntriesByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error fetching transaction history: %v", err)
		return consts.MsgStoreFailure
	}
	return common.FormatTransactionHistory(entries)
}

// emitLedgerEvent records the audit document and hands the Kafka publish to
// the worker pool so the reply does not wait on the broker.
func (h *BankingService) emitLedgerEvent(ctx context.Context, phoneNumber, eventType string, amount int, user models.UserLedger) {
	event := common.SerializeLedgerEvent(phoneNumber, eventType, amount, user)

	if err := h.eventRepo.InsertEvent(ctx, event); err != nil {
		logger.Error(ctx, "Ledger event insert failed for %s: %v", phoneNumber, err)
		return
	}

	if h.producer == nil {
		return
	}

	h.workerPool.Submit(func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.producer.PublishLedgerEvent(publishCtx, event); err != nil {
			// Stays flagged unpublished; the retry endpoint replays it.
			logger.Error(publishCtx, "Kafka publish failed for ledger event %s: %v", event.GUID, err)
			return
		}
		h.eventRepo.MarkPublished(publishCtx, event.ID)
	})
}
