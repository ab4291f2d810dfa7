package user

import (
	"errors"

	"github.com/hazelsoft/userdir/internal/pkg/message"
)

// Business-rule rejections. These are expected outcomes, returned as values
// and mapped to 4xx responses at the boundary.
var (
	ErrNotFound             = errors.New(message.UserNotFound)
	ErrInvalidEmailFormat   = errors.New(message.InvalidEmailFormat)
	ErrNoAlphanumericChars  = errors.New(message.NoAlphanumericCharacters)
	ErrInvalidEmailDomain   = errors.New(message.InvalidEmailDomain)
	ErrInvalidPhoneFormat   = errors.New(message.InvalidPhoneFormat)
	ErrDuplicateEmail       = errors.New(message.DuplicateEmail)
	ErrDuplicatePhoneNumber = errors.New(message.DuplicatedPhoneNumber)
)

// ErrQueryFailed wraps failures from the persistence layer. The service
// propagates it unchanged; the handler maps it to a server error.
var ErrQueryFailed = errors.New("user repository: query failed")

// IsValidationError reports whether err is one of the email/phone rule
// violations.
func IsValidationError(err error) bool {
	rules := []error{
		ErrInvalidEmailFormat,
		ErrNoAlphanumericChars,
		ErrInvalidEmailDomain,
		ErrInvalidPhoneFormat,
	}
	for _, rule := range rules {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}

// IsConflictError reports whether err is a uniqueness violation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicatePhoneNumber)
}
