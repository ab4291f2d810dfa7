package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// Response is the uniform envelope returned at the system boundary for every
// operation result. Exactly one of Data and Errors is populated.
//
// A success envelope has the form:
//
//	{
//	  "success": true,
//	  "message": "User Created Successfully",
//	  "data": { "id": 1, "name": "Farhanxxx", ... }
//	}
//
// and a failure envelope:
//
//	{
//	  "success": false,
//	  "errors": ["Email already exists"]
//	}
//
// The generic type parameter T allows the envelope to carry arbitrary
// response data. Data, Message and Errors are omitted when empty.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    T        `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK writes a JSON-encoded success envelope to w with the provided HTTP
// status code.
//
// If msg is non-nil, its value is included under the "message" field.
// If data is non-nil, it is included under the "data" field.
func OK[T any](w http.ResponseWriter, status int, msg *string, data *T) {
	payload := &Response[*T]{Success: true}
	if msg != nil {
		payload.Message = *msg
	}

	if data != nil {
		payload.Data = data
	}

	response.JSON(w, status, payload)
}

// Fail writes a JSON-encoded failure envelope to w with the provided HTTP
// status code. The reason is logged at Error level with the key "reason";
// errs carries the violated rule(s) shown to the caller.
func Fail(w http.ResponseWriter, status int, reason error, errs []string) {
	slog.Error("request failed", "reason", reason)
	payload := &Response[any]{
		Success: false,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}
