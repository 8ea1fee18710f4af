package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, status int, data any) {
	write(w, status, envelope{Success: true, Data: data})
}

// Fail writes an error envelope with a caller-facing message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Error: message})
}

// Internal logs the error and writes a fixed 500 envelope. Unexpected
// error detail never reaches the client.
func Internal(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	Fail(w, http.StatusInternalServerError, "internal error")
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
