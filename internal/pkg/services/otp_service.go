package services

import (
	"context"
	"fmt"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/logger"
	"globe/pocketbank_sms/internal/pkg/notification"
	"math/rand"
	"strconv"
	"strings"
)

// OtpService issues and checks login codes. The code rides back in the reply
// text on top of the notification publish; this is a demo shortcut, the
// simulated SMS channel has no real delivery path. math/rand is fine here,
// nothing about this flow claims to be a security control.
type OtpService struct {
	otpRepo             OtpRepoInterface
	notificationService notification.NotificationServiceInterface
}

func NewOtpService(otpRepo OtpRepoInterface, notificationService notification.NotificationServiceInterface) *OtpService {
	return &OtpService{
		otpRepo:             otpRepo,
		notificationService: notificationService,
	}
}

// GenerateOtp draws a 4-digit code.
func GenerateOtp() int {
	return 1000 + rand.Intn(9000)
}

// SendOtp generates a code, overwrites any prior record for the phone number
// and reports the outcome as reply text.
func (s *OtpService) SendOtp(ctx context.Context, phoneNumber string) string {
	code := GenerateOtp()

	if err := s.otpRepo.SaveOtp(ctx, phoneNumber, code); err != nil {
		logger.Error(ctx, "Error sending OTP: %v", err)
		return consts.MsgOtpSendFailed
	}

	if err := s.notificationService.NotifyUser(ctx, phoneNumber, consts.SmsEventOtpIssued,
		fmt.Sprintf("Your PocketBank OTP is %d", code)); err != nil {
		// Notification is best effort, the code is already persisted.
		logger.Warn(ctx, "OTP notification publish failed for %s: %v", phoneNumber, err)
	}

	return fmt.Sprintf(consts.MsgOtpSent, code)
}

// VerifyOtp matches the submitted code against the most recently issued one.
// No expiry, no attempt limiting, no single-use invalidation: a correct code
// keeps verifying until the next send overwrites it.
func (s *OtpService) VerifyOtp(ctx context.Context, phoneNumber, submittedCode string) (bool, string) {
	record, err := s.otpRepo.OtpByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error(ctx, "Error verifying OTP: %v", err)
		return false, consts.MsgOtpExpired
	}

	submitted, err := strconv.Atoi(strings.TrimSpace(submittedCode))
	if err != nil {
		return false, consts.MsgIncorrectOtp
	}

	if submitted != record.Code {
		logger.Info(ctx, "OTP verification failed for %s: %s", phoneNumber, consts.ErrorOtpMismatch.ErrorCode())
		return false, consts.MsgIncorrectOtp
	}

	return true, ""
}
