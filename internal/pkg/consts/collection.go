package consts

const (
	UsersCollection        = "Users"
	OtpCollection          = "Otps"
	LoanHistoryCollection  = "LoanHistory"
	ChatHistoryCollection  = "ChatHistory"
	LedgerEventsCollection = "LedgerEvents"
)
