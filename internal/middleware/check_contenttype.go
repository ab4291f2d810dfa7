package middleware

import (
	"fmt"
	"net/http"

	"github.com/hazelsoft/userdir/internal/pkg/message"
	"github.com/hazelsoft/userdir/internal/pkg/web"
)

// CheckContentType rejects payload-carrying requests whose Content-Type is
// not application/json.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if contentType != web.MimeJSON {
				err := fmt.Errorf("invalid content-type: %s", contentType)
				web.Fail(w, http.StatusUnsupportedMediaType, err, []string{message.InvalidInput})
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
