package utils

import "globe/pocketbank_sms/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "POCKETBANK_INTERNAL_ERROR"
}
