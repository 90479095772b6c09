package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the conventional response shape: {success, message?, data?,
// error?}. Handlers are free to send bare payloads where clients already
// depend on them (profile reads); this is a convention, not a contract.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	write(w, r, status, v)
}

func Success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	write(w, r, status, Envelope{Success: true, Message: message, Data: data})
}

func Error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	write(w, r, status, Envelope{Success: false, Error: code, Message: message})
}

func write(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", "error", err, "path", r.URL.Path)
	}
}
