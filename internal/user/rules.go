package user

import (
	"net/mail"
	"strings"
)

// allowedDomains are the email domain suffixes accepted by the directory.
var allowedDomains = []string{".com", ".net", ".org", ".co", ".pk"}

const phoneLength = 11

// ValidateEmail checks a candidate email against the directory rules and
// returns the first violated rule. The order is part of the contract:
//
//  1. empty or whitespace-only            -> ErrInvalidEmailFormat
//  2. malformed address                   -> ErrInvalidEmailFormat
//  3. no alphanumeric before the "@"      -> ErrNoAlphanumericChars
//  4. domain suffix not in allowedDomains -> ErrInvalidEmailDomain
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidEmailFormat
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmailFormat
	}

	local := email[:strings.Index(email, "@")]
	if !containsAlphanumeric(local) {
		return ErrNoAlphanumericChars
	}

	domain := strings.ToLower(email[strings.LastIndex(email, "@"):])
	for _, allowed := range allowedDomains {
		if strings.HasSuffix(domain, allowed) {
			return nil
		}
	}

	return ErrInvalidEmailDomain
}

// ValidatePhone checks that a candidate phone number is exactly 11 decimal
// digits.
func ValidatePhone(phone string) error {
	if len(phone) != phoneLength {
		return ErrInvalidPhoneFormat
	}

	for _, c := range phone {
		if c < '0' || c > '9' {
			return ErrInvalidPhoneFormat
		}
	}

	return nil
}

func containsAlphanumeric(s string) bool {
	for _, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}
