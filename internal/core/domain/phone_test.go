package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		normalized string
	}{
		{name: "dashes stripped", input: "74-12-34-56", valid: true, normalized: "74123456"},
		{name: "spaces stripped", input: "65 12 34 56", valid: true, normalized: "65123456"},
		{name: "prefix 66", input: "66123456", valid: true, normalized: "66123456"},
		{name: "prefix 77", input: "77123456", valid: true, normalized: "77123456"},
		{name: "unknown prefix", input: "75123456", valid: false, normalized: "75123456"},
		{name: "too short", input: "7412345", valid: false, normalized: "7412345"},
		{name: "too long", input: "741234567", valid: false, normalized: "741234567"},
		{name: "country code makes it too long", input: "+24174123456", valid: false, normalized: "24174123456"},
		{name: "empty", input: "", valid: false, normalized: ""},
		{name: "letters only", input: "abc", valid: false, normalized: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePhone(tt.input)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.normalized, res.Normalized)
		})
	}
}

func TestValidatePhone_LengthOtherThanEightIsInvalid(t *testing.T) {
	digits := "741234567890123"
	for n := 0; n <= len(digits); n++ {
		if n == PhoneDigits {
			continue
		}
		assert.False(t, ValidatePhone(digits[:n]).IsValid, "length %d", n)
	}
}

func TestValidatePhone_PrefixOutsideSetIsInvalid(t *testing.T) {
	for a := '0'; a <= '9'; a++ {
		for b := '0'; b <= '9'; b++ {
			prefix := string([]rune{a, b})
			res := ValidatePhone(prefix + "123456")
			switch prefix {
			case "74", "65", "66", "77":
				assert.True(t, res.IsValid, prefix)
			default:
				assert.False(t, res.IsValid, prefix)
			}
		}
	}
}

func TestSanitizePhoneInput(t *testing.T) {
	assert.Equal(t, "+24174123456", SanitizePhoneInput("+241 74-12 34 56"))
	assert.Equal(t, "74123456", SanitizePhoneInput("(74) 12.34.56"))
	assert.Equal(t, "", SanitizePhoneInput("abc"))
}
