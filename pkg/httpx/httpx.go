package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope every endpoint answers with.
// swagger:model Response
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// ErrorBody carries a stable machine-readable code and a safe message.
// swagger:model ErrorBody
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, data any, code int) error {
	return writeJSON(w, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}, code)
}

func WriteError(w http.ResponseWriter, errCode, message string, status int) error {
	return writeJSON(w, Response{
		Success:   false,
		Error:     &ErrorBody{Code: errCode, Message: message},
		Timestamp: time.Now().UTC(),
	}, status)
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	body := &ErrorBody{
		Code:    "VALIDATION_ERROR",
		Message: "invalid request",
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			body.Fields[fe.Field()] = fe.Tag()
		}
	}

	return writeJSON(w, Response{
		Success:   false,
		Error:     body,
		Timestamp: time.Now().UTC(),
	}, http.StatusBadRequest)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
