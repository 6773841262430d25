package models

import "time"

// Conversation steps. A session only ever moves forward; bankingFeatures
// re-enters itself for every command and has no logout transition.
const (
	StepGreeting        = "greeting"
	StepPhoneNumber     = "phoneNumber"
	StepOtpVerification = "otpVerification"
	StepBankingFeatures = "bankingFeatures"
)

// Session is the conversation state between two messages. It is treated as an
// immutable value: the conversation service returns the next session and the
// caller persists it.
type Session struct {
	SessionID   string    `json:"sessionId"`
	PhoneNumber string    `json:"phoneNumber"`
	IsLoggedIn  bool      `json:"isLoggedIn"`
	CurrentStep string    `json:"currentStep"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSession returns a fresh session parked at the greeting step.
func NewSession(sessionID string) Session {
	now := time.Now().UTC()
	return Session{
		SessionID:   sessionID,
		CurrentStep: StepGreeting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
