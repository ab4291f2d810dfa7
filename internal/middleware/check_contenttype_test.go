package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazelsoft/userdir/internal/middleware"
	"github.com/hazelsoft/userdir/internal/pkg/web"
)

func TestMiddleware_CheckContentType(t *testing.T) {
	t.Parallel()

	const okBody = "test"

	var tests = []struct {
		name, method, contentType string
		wantCode                  int
	}{
		{"Correct Content-Type Post", http.MethodPost, web.MimeJSON, http.StatusOK},
		{"Correct Content-Type Put", http.MethodPut, web.MimeJSON, http.StatusOK},
		{"Correct Content-Type Patch", http.MethodPatch, web.MimeJSON, http.StatusOK},
		{"Content-Type with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusUnsupportedMediaType},
		{"Other Content-Type", http.MethodPost, "text/html; charset=utf-8", http.StatusUnsupportedMediaType},
		{"Empty Content-Type", http.MethodPost, "", http.StatusUnsupportedMediaType},
		{"Get request skips the check", http.MethodGet, "", http.StatusOK},
		{"Delete request skips the check", http.MethodDelete, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if _, err := w.Write([]byte(okBody)); err != nil {
					const status = http.StatusInternalServerError
					http.Error(w, http.StatusText(status), status)
				}
			})

			req, rec := httptest.NewRequest(tt.method, "/test", http.NoBody), httptest.NewRecorder()
			req.Header.Set(web.HeaderContentType, tt.contentType)

			middleware.CheckContentType(handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d\nwant: %d", rec.Code, tt.wantCode)
			}

			if tt.wantCode == http.StatusOK && rec.Body.String() != okBody {
				t.Errorf("rec.Body.String() = %q\nwant: %q", rec.Body.String(), okBody)
			}
		})
	}
}
