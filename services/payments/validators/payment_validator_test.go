package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMSISDN(t *testing.T) {
	valid := []string{
		"254712345678",
		"254112345678",
		"0712345678",
		"0112345678",
	}
	for _, phone := range valid {
		assert.True(t, ValidMSISDN(phone), phone)
	}

	invalid := []string{
		"",
		"712345678",       // missing prefix
		"254812345678",    // 8 is not a mobile prefix
		"25471234567",     // too short
		"2547123456789",   // too long
		"+254712345678",   // plus not accepted
		"25471234567a",    // non-digit
		"0044712345678",   // wrong country
	}
	for _, phone := range invalid {
		assert.False(t, ValidMSISDN(phone), phone)
	}
}

func TestValidCardFormat(t *testing.T) {
	assert.True(t, ValidCardFormat("1234-5678-9012-3456"))
	assert.True(t, ValidCardFormat("4111-1111-1111-1111"))

	invalid := []string{
		"",
		"1234567890123456",
		"1234-5678-9012",
		"1234-5678-9012-345",
		"1234-5678-9012-34567",
		"abcd-efgh-ijkl-mnop",
		"1234 5678 9012 3456",
	}
	for _, card := range invalid {
		assert.False(t, ValidCardFormat(card), card)
	}
}
