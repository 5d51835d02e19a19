package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkozyrev/weekplanner/internal/logger"
)

// Response is the uniform envelope for every API reply.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries a stable machine code plus a human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteData writes a success envelope with the given status and payload.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

// WriteMessage writes a success envelope with payload and message.
func WriteMessage(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{Success: true, Data: data, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError translates an error into the envelope via handleError.
func WriteError(w http.ResponseWriter, logger *logger.Logger, err error) {
	status, code, message := handleError(logger, err)
	writeJSON(w, status, Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}
