package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"9999999999", "+14155550123", "+44 20 7946 0958", "1234567890123"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}

	invalid := []string{"", "12345", "phone-number", "+1-415-555-0123", "12345678901234"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"short1", "Password must be at least 8 characters long"},
		{"alllowercase1!", "Password must contain at least one uppercase letter"},
		{"ALLUPPERCASE1!", "Password must contain at least one lowercase letter"},
		{"NoDigitsHere!", "Password must contain at least one number"},
		{"NoSpecial123", "Password must contain at least one special character"},
		{"Str0ng!Pass", ""},
		{"Str0ng!Pass" + strings.Repeat("x", 61), ""},
		{"Str0ng!Pass" + strings.Repeat("x", 62), "Password must be at most 72 bytes long"},
	}

	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.want)
		})
	}
}
