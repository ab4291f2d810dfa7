package middleware

import (
	"errors"
	"net/http"
	"sort"

	"github.com/hazelsoft/userdir/internal/pkg/message"
	"github.com/hazelsoft/userdir/internal/pkg/web"
	"github.com/hazelsoft/userdir/internal/platform/validation"
)

// ValidateInput runs the struct validator over the decoded payload and
// rejects the request with the field messages when any rule fails.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, []string{message.InvalidInput})
				return
			}

			if errMap := validator.ValidateStruct(params); errMap != nil {
				web.Fail(w, http.StatusBadRequest, errors.New(message.InvalidInput), flatten(errMap))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// flatten turns the validator's field map into the envelope's errors list,
// sorted for a stable response.
func flatten(errMap map[string]string) []string {
	errs := make([]string, 0, len(errMap))
	for _, msg := range errMap {
		errs = append(errs, msg)
	}
	sort.Strings(errs)
	return errs
}
