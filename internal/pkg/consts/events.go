package consts

// Ledger event and history entry types.
const (
	EventTypeLoan      = "loan"
	EventTypeRepayment = "repayment"
)

// Chat message senders.
const (
	SenderUser   = "user"
	SenderSystem = "system"
)

// SMS notification event names carried on the Pub/Sub payload.
const (
	SmsEventOtpIssued     = "OTP_ISSUED"
	SmsEventSystemMessage = "SYSTEM_MESSAGE"
)

const DateFormat = "2006-01-02 15:04:05"
