package consts

const (
	// ValidPhoneNumber accepts exactly ten digits, nothing else.
	ValidPhoneNumber = `^\d{10}$`
)

var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie"}
