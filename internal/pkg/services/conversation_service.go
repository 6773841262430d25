package services

import (
	"context"
	"fmt"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/notification"
	"globe/pocketbank_sms/internal/pkg/utils"
	"strings"
	"time"
)

// ConversationResult is what one inbound SMS produces: the advanced session,
// the reply text, and any non-fatal warnings (chat history write failures).
type ConversationResult struct {
	Session  models.Session
	Reply    string
	Warnings []string
}

type ConversationServiceInterface interface {
	Handle(ctx context.Context, session models.Session, input string) ConversationResult
}

// ConversationService drives the per-session state machine. Sessions move
// greeting -> phoneNumber -> otpVerification -> bankingFeatures and then stay
// there; every step re-prompts on bad input instead of resetting.
type ConversationService struct {
	bankingService      BankingServiceInterface
	otpService          OtpServiceInterface
	chatRepo            ChatHistoryRepoInterface
	notificationService notification.NotificationServiceInterface
}

func NewConversationService(bankingService BankingServiceInterface, otpService OtpServiceInterface, chatRepo ChatHistoryRepoInterface, notificationService notification.NotificationServiceInterface) *ConversationService {
	return &ConversationService{
		bankingService:      bankingService,
		otpService:          otpService,
		chatRepo:            chatRepo,
		notificationService: notificationService,
	}
}

// Handle processes one inbound message against the session's current step.
// The passed session is not mutated; the advanced copy comes back on the
// result and the caller persists it.
func (s *ConversationService) Handle(ctx context.Context, session models.Session, input string) ConversationResult {
	trimmed := strings.TrimSpace(input)
	next := session
	var warnings []string

	s.recordMessage(ctx, session.PhoneNumber, trimmed, consts.SenderUser, &warnings)

	var reply string
	switch session.CurrentStep {
	case models.StepGreeting:
		reply = s.handleGreeting(trimmed, &next)
	case models.StepPhoneNumber:
		reply = s.handlePhoneNumber(ctx, trimmed, &next)
	case models.StepOtpVerification:
		reply = s.handleOtpVerification(ctx, trimmed, &next, &warnings)
	case models.StepBankingFeatures:
		reply = s.handleBankingCommand(ctx, trimmed, next)
	default:
		// Unknown step in a stored session, park it back at the start.
		logger.Warn(ctx, "Session %s carried unknown step %q, resetting", session.SessionID, session.CurrentStep)
		next.CurrentStep = models.StepGreeting
		reply = consts.MsgGreetingHint
	}

	next.UpdatedAt = time.Now().UTC()
	s.recordMessage(ctx, next.PhoneNumber, reply, consts.SenderSystem, &warnings)
	s.notifyReply(ctx, next.PhoneNumber, reply)

	return ConversationResult{Session: next, Reply: reply, Warnings: warnings}
}

func (s *ConversationService) handleGreeting(input string, next *models.Session) string {
	if !strings.EqualFold(input, "HI") {
		return consts.MsgGreetingHint
	}
	next.CurrentStep = models.StepPhoneNumber
	return consts.MsgAskPhoneNumber
}

func (s *ConversationService) handlePhoneNumber(ctx context.Context, input string, next *models.Session) string {
	if !utils.IsValidPhoneNumber(input) {
		return consts.MsgInvalidPhoneNumber
	}

	next.PhoneNumber = input
	next.CurrentStep = models.StepOtpVerification
	return s.otpService.SendOtp(ctx, input)
}

func (s *ConversationService) handleOtpVerification(ctx context.Context, input string, next *models.Session, warnings *[]string) string {
	ok, failReply := s.otpService.VerifyOtp(ctx, next.PhoneNumber, input)
	if !ok {
		return failReply
	}

	// First successful login seeds the ledger record.
	if err := s.bankingService.InitializeAccount(ctx, next.PhoneNumber); err != nil {
		*warnings = append(*warnings, "account initialization failed")
	}

	next.IsLoggedIn = true
	next.CurrentStep = models.StepBankingFeatures
	return fmt.Sprintf(consts.MsgLoginSuccess, s.bankingService.Balance(ctx, next.PhoneNumber))
}

// handleBankingCommand dispatches the looping command step. Matching is
// case-insensitive and whitespace-tolerant; anything unrecognized gets the
// command listing.
func (s *ConversationService) handleBankingCommand(ctx context.Context, input string, session models.Session) string {
	tokens := utils.SplitCommand(strings.ToUpper(input))
	if len(tokens) == 0 {
		return consts.MsgHelp
	}
	command := strings.Join(tokens, " ")
	phoneNumber := session.PhoneNumber

	switch command {
	case "BALANCE":
		return fmt.Sprintf(consts.MsgBalance, s.bankingService.Balance(ctx, phoneNumber))
	case "CREDIT SCORE", "SCORE":
		return s.bankingService.CreditScore(ctx, phoneNumber)
	case "LOANS TAKEN":
		return s.bankingService.TotalLoans(ctx, phoneNumber)
	case "LOAN BALANCE":
		return s.bankingService.LoanBalance(ctx, phoneNumber)
	case "LOAN DETAILS", "DETAILS":
		return s.bankingService.LoanDetails(ctx, phoneNumber)
	case "DUE DATE":
		return s.bankingService.DueDate(ctx, phoneNumber)
	case "LOAN HISTORY", "HISTORY":
		return s.bankingService.LoanHistory(ctx, phoneNumber)
	case "TRANSACTIONS", "LIST":
		return s.bankingService.TransactionHistory(ctx, phoneNumber)
	case "HELP":
		return consts.MsgHelp
	}

	switch tokens[0] {
	case "LOAN":
		return s.handleLoanCommand(ctx, phoneNumber, tokens)
	case "REPAY":
		return s.handleRepayCommand(ctx, phoneNumber, tokens)
	}

	return consts.MsgHelp
}

func (s *ConversationService) handleLoanCommand(ctx context.Context, phoneNumber string, tokens []string) string {
	if len(tokens) != 3 {
		return consts.MsgLoanUsage
	}
	amount, err := utils.ParsePositiveInt(tokens[1])
	if err != nil {
		return consts.MsgLoanUsage
	}
	days, err := utils.ParsePositiveInt(tokens[2])
	if err != nil {
		return consts.MsgLoanUsage
	}
	return s.bankingService.ApplyLoan(ctx, phoneNumber, amount, days)
}

func (s *ConversationService) handleRepayCommand(ctx context.Context, phoneNumber string, tokens []string) string {
	if len(tokens) != 2 {
		return consts.MsgRepayUsage
	}
	amount, err := utils.ParsePositiveInt(tokens[1])
	if err != nil {
		return consts.MsgRepayUsage
	}
	return s.bankingService.RepayLoan(ctx, phoneNumber, amount)
}

// notifyReply mirrors the system reply onto the outbound SMS topic once the
// session is tied to a phone number. Best effort, same as the OTP publish.
func (s *ConversationService) notifyReply(ctx context.Context, phoneNumber, reply string) {
	if phoneNumber == "" || reply == "" {
		return
	}
	if err := s.notificationService.NotifyUser(ctx, phoneNumber, consts.SmsEventSystemMessage, reply); err != nil {
		logger.Warn(ctx, "Reply notification publish failed for %s: %v", phoneNumber, err)
	}
}

// recordMessage appends to chat history once the session is tied to a phone
// number. Failures do not block the reply, they surface as warnings.
func (s *ConversationService) recordMessage(ctx context.Context, phoneNumber, text, sender string, warnings *[]string) {
	if phoneNumber == "" || text == "" {
		return
	}
	if err := s.chatRepo.AppendMessage(ctx, phoneNumber, text, sender); err != nil {
		logger.Warn(ctx, "Chat history write failed for %s: %v", phoneNumber, err)
		*warnings = append(*warnings, fmt.Sprintf("chat history write failed for %s message", sender))
	}
}
