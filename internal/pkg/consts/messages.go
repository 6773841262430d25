package consts

// User-facing SMS reply texts. Amounts render with the ₹ glyph because the
// demo product is pinned to INR.
const (
	MsgGreetingHint         = "⚠️ Send 'HI' to get started."
	MsgAskPhoneNumber       = "📲 Please enter your 10-digit phone number to continue."
	MsgInvalidPhoneNumber   = "⚠️ Invalid phone number. Please enter a 10-digit number."
	MsgIncorrectOtp         = "❌ Incorrect OTP. Try again."
	MsgOtpSent              = "🔔 OTP Sent! Check your notifications. (Your OTP: %d)"
	MsgOtpSendFailed        = "❌ Error sending OTP."
	MsgOtpExpired           = "❌ OTP expired or invalid."
	MsgLoginSuccess         = "✅ Login successful! Your balance is ₹%d. Type BALANCE to check funds or LOAN <amount> <days> to apply."
	MsgBalance              = "💰 Your balance is ₹%d."
	MsgLoanUsage            = "⚠️ Invalid loan format. Use: LOAN <amount> <days>"
	MsgRepayUsage           = "⚠️ Invalid repayment format. Use: REPAY <amount>"
	MsgLoanDeniedScore      = "❌ Loan request denied by AI due to low credit score."
	MsgLoanDeniedDailyCap   = "❌ Daily loan limit reached. Only loans up to ₹%d are allowed again today."
	MsgLoanApproved         = "✅ Loan of ₹%d approved! New Balance: ₹%d."
	MsgLoanApprovedInterest = "✅ Loan of ₹%d approved for %d days! Total repayment: ₹%.2f (interest: ₹%.2f). New Balance: ₹%d."
	MsgLoanFailed           = "❌ Loan request failed."
	MsgRepayTooMuch         = "⚠️ You don't have that much loan to repay."
	MsgRepaySuccess         = "✅ Loan repayment of ₹%d successful. Remaining loan: ₹%d. Credit Score improved to %d."
	MsgRepayFailed          = "❌ Repayment failed."
	MsgCreditScore          = "⭐ Your AI-evaluated Credit Score: %d"
	MsgTotalLoans           = "📊 Total Loans Taken: ₹%d"
	MsgLoanBalance          = "💰 Loan Balance: ₹%d"
	MsgDueDate              = "📅 Your loan is due in 7 days."
	MsgLoanDetails          = "📜 Loan Details:\n- Amount: ₹%d\n- Last Loan Date: %s\n- Credit Score: %d"
	MsgUserNotFound         = "⚠️ User not found. Please login first."
	MsgLoanHistoryHeader    = "📜 Loan History:\n"
	MsgTransactionsHeader   = "🔄 Recent Transactions:\n"
	MsgNoLoanHistory        = "📜 No loan history available."
	MsgNoTransactions       = "📜 No transaction history available."
	MsgStoreFailure         = "❌ Something went wrong. Please try again."
	MsgHelp                 = "📢 Available Commands: BALANCE, LOAN <amount> <days>, CREDIT SCORE, LOANS TAKEN, LOAN BALANCE, DUE DATE, REPAY <amount>, LOAN HISTORY, TRANSACTIONS."
)
