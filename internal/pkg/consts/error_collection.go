package consts

import "globe/pocketbank_sms/internal/pkg/models"

var (
	ErrorPhoneNumberFormatValidationFailed = &models.CustomError{
		Code:    "POCKETBANK_VALIDATION_PHONE_NUMBER_FORMAT_INVALID",
		Message: "Phone number parameter validation failed",
	}
	ErrorAmountFormatValidationFailed = &models.CustomError{
		Code:    "POCKETBANK_VALIDATION_AMOUNT_FORMAT_INVALID",
		Message: "Amount must be a positive whole number",
	}
	ErrorUserNotFound = &models.CustomError{
		Code:    "POCKETBANK_LEDGER_USER_NOT_FOUND",
		Message: "User not found",
	}
	ErrorOtpNotFound = &models.CustomError{
		Code:    "POCKETBANK_OTP_NOT_FOUND",
		Message: "No OTP issued for this phone number",
	}
	ErrorOtpMismatch = &models.CustomError{
		Code:    "POCKETBANK_OTP_MISMATCH",
		Message: "Submitted OTP does not match the issued code",
	}
	ErrorInEligibleCreditScore = &models.CustomError{
		Code:    "POCKETBANK_LOAN_VALIDATION_CREDIT_SCORE_NOT_ELIGIBLE",
		Message: "Credit score not eligible for requested loan",
	}
	ErrorDailyLoanCapExceeded = &models.CustomError{
		Code:    "POCKETBANK_LOAN_VALIDATION_DAILY_CAP_EXCEEDED",
		Message: "Daily loan cap exceeded",
	}
	ErrorOverRepayment = &models.CustomError{
		Code:    "POCKETBANK_REPAYMENT_VALIDATION_AMOUNT_EXCEEDS_OUTSTANDING",
		Message: "Repayment exceeds outstanding loan amount",
	}
	ErrorNoDocumentFound = &models.CustomError{
		Code:    "POCKETBANK_INTERNAL_ERROR_NO_DOCUMENTS_FOUND",
		Message: "No documents in result",
	}
	ErrorSessionNotFound = &models.CustomError{
		Code:    "POCKETBANK_SESSION_NOT_FOUND_OR_EXPIRED",
		Message: "Session not found or expired",
	}
)
