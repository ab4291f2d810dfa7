package user_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hazelsoft/userdir/internal/user"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid com domain", "a1@test.com", nil},
		{"valid net domain", "b2@test.net", nil},
		{"valid org domain", "someone@example.org", nil},
		{"valid co domain", "someone@example.co", nil},
		{"valid pk domain", "someone@example.com.pk", nil},
		{"uppercase domain accepted", "someone@EXAMPLE.COM", nil},
		{"empty", "", user.ErrInvalidEmailFormat},
		{"whitespace only", "   ", user.ErrInvalidEmailFormat},
		{"missing at sign", "notanemail.com", user.ErrInvalidEmailFormat},
		{"two at signs", "a@@test.com", user.ErrInvalidEmailFormat},
		{"display name form", "Someone <a@test.com>", user.ErrInvalidEmailFormat},
		{"no alphanumeric local part", "_-_@test.com", user.ErrNoAlphanumericChars},
		{"disallowed domain", "someone@example.io", user.ErrInvalidEmailDomain},
		{"disallowed domain de", "someone@example.de", user.ErrInvalidEmailDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := user.ValidateEmail(tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmail(%q) = %v, want: %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

// The reported reason must be the first rule violated, not an arbitrary one:
// an address that is both malformed and on a bad domain reports the format
// error, and a bad local part on a bad domain reports the local part.
func TestValidateEmail_FirstFailureWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"malformed beats bad domain", "no-at-sign.io", user.ErrInvalidEmailFormat},
		{"local part beats bad domain", "_@example.io", user.ErrNoAlphanumericChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := user.ValidateEmail(tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmail(%q) = %v, want: %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phone   string
		wantErr error
	}{
		{"valid", "01234567890", nil},
		{"valid all zeroes", "00000000000", nil},
		{"empty", "", user.ErrInvalidPhoneFormat},
		{"too short", "0123456789", user.ErrInvalidPhoneFormat},
		{"too long", "012345678901", user.ErrInvalidPhoneFormat},
		{"letter inside", "0123456789a", user.ErrInvalidPhoneFormat},
		{"plus prefix", "+1234567890", user.ErrInvalidPhoneFormat},
		{"spaces", "01234 67890", user.ErrInvalidPhoneFormat},
		{"eleven spaces", strings.Repeat(" ", 11), user.ErrInvalidPhoneFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := user.ValidatePhone(tt.phone)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePhone(%q) = %v, want: %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}
