package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	CodeInvalidRequestBody    = "invalid_request_body"
	CodeInvalidID             = "invalid_id"
	CodeValidationFailed      = "validation_failed"
	CodeInvalidAmount         = "invalid_amount"
	CodeInvalidRange          = "invalid_range"
	CodeInvalidTransition     = "invalid_transition"
	CodeUnauthorized          = "unauthorized"
	CodeForbidden             = "forbidden"
	CodeNotFound              = "not_found"
	CodeInitiativeUnavailable = "initiative_not_available"
	CodeDuplicateSubmission   = "duplicate_submission"
	CodeInternalError         = "internal_error"
)

// FieldError points at the offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, code, msg string) {
	Fields(w, status, code, msg, nil)
}

// Fields writes an error carrying field-level detail.
func Fields(w http.ResponseWriter, status int, code, msg string, fields []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error:  msg,
		Code:   code,
		Fields: fields,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}

	_, _ = w.Write(payload)
}

func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
