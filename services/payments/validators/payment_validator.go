package validators

import "regexp"

var (
	// Kenyan mobile numbers: 2547XXXXXXXX / 2541XXXXXXXX or the local
	// 07XX/01XX form.
	msisdnPattern = regexp.MustCompile(`^(?:254|0)(?:7|1)\d{8}$`)

	// Card numbers: 4 groups of 4 digits separated by dashes.
	cardPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)
)

// ValidMSISDN reports whether the phone number can receive an M-Pesa push.
func ValidMSISDN(phone string) bool {
	return msisdnPattern.MatchString(phone)
}

// ValidCardFormat reports whether the card number has the expected format
// (e.g. 1234-5678-9012-3456).
func ValidCardFormat(cardNumber string) bool {
	return cardPattern.MatchString(cardNumber)
}
