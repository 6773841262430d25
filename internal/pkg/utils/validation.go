package utils

import (
	"globe/pocketbank_sms/internal/pkg/consts"
	"regexp"
	"strconv"
	"strings"
)

var phoneNumberRegex = regexp.MustCompile(consts.ValidPhoneNumber)

// IsValidPhoneNumber accepts exactly 10 digits.
func IsValidPhoneNumber(phoneNumber string) bool {
	return phoneNumberRegex.MatchString(phoneNumber)
}

// ParsePositiveInt parses a positive whole number from a command argument.
func ParsePositiveInt(arg string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, consts.ErrorAmountFormatValidationFailed
	}
	if value <= 0 {
		return 0, consts.ErrorAmountFormatValidationFailed
	}
	return value, nil
}

// SplitCommand tokenizes a raw SMS command on whitespace.
func SplitCommand(input string) []string {
	return strings.Fields(strings.TrimSpace(input))
}
