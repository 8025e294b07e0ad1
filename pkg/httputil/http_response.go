package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteErrorResponse writes the error envelope. Details are only exposed when given.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp, sonic.ConfigFastest)
}

// WriteJSONResponse writes body as JSON. A nil body produces only the status line.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.WriteHeader(statusCode)
		return
	}
	writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

// Headers are already sent when encoding fails, so the failure can only be logged.
func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("writing response body error", slog.String("error", err.Error()))
	}
}
