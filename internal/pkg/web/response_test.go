package web_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazelsoft/userdir/internal/pkg/web"
)

func TestOK(t *testing.T) {
	t.Parallel()

	type payload struct {
		ID int64 `json:"id"`
	}

	msg := "User Created Successfully"
	data := payload{ID: 1}

	rec := httptest.NewRecorder()
	web.OK(rec, http.StatusCreated, &msg, &data)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusCreated)
	}
	web.AssertContentType(t, res)

	body := web.DecodeJSONResponse(t, res)
	if body["success"] != true {
		t.Errorf(`body["success"] = %v, want: true`, body["success"])
	}
	if body["message"] != msg {
		t.Errorf(`body["message"] = %v, want: %q`, body["message"], msg)
	}
	if _, hasErrors := body["errors"]; hasErrors {
		t.Error("success envelope must not carry an errors field")
	}
}

func TestOK_NoPayload(t *testing.T) {
	t.Parallel()

	msg := "User deleted successfully"

	rec := httptest.NewRecorder()
	web.OK[struct{}](rec, http.StatusOK, &msg, nil)

	res := rec.Result()
	defer res.Body.Close()

	body := web.DecodeJSONResponse(t, res)
	if body["success"] != true {
		t.Errorf(`body["success"] = %v, want: true`, body["success"])
	}
	if _, hasData := body["data"]; hasData {
		t.Error("envelope without payload must omit the data field")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.Fail(rec, http.StatusConflict, errors.New("email collision"), []string{"Email already exists"})

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusConflict {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusConflict)
	}

	body := web.DecodeJSONResponse(t, res)
	if body["success"] != false {
		t.Errorf(`body["success"] = %v, want: false`, body["success"])
	}
	if _, hasData := body["data"]; hasData {
		t.Error("failure envelope must not carry a data field")
	}

	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 || errs[0] != "Email already exists" {
		t.Errorf(`body["errors"] = %v, want: ["Email already exists"]`, body["errors"])
	}
}

func TestResponse_MarshalShape(t *testing.T) {
	t.Parallel()

	failure := web.Response[any]{
		Success: false,
		Errors:  []string{"User not found"},
	}

	b, err := json.Marshal(failure)
	if err != nil {
		t.Fatalf("json.Marshal(failure) = %v, want no error", err)
	}

	want := `{"success":false,"errors":["User not found"]}`
	if string(b) != want {
		t.Errorf("json.Marshal(failure) = %s, want: %s", b, want)
	}
}
