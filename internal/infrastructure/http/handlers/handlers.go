// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/fridgewise/core/pkg/errors"
	"go.uber.org/zap"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an application error onto the HTTP response, logging
// the diagnostic details that do not belong on the wire
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr := errors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	logger.Error("Request error",
		zap.String("request_id", requestID),
		zap.String("code", string(appErr.Code)),
		zap.String("message", appErr.Message),
		zap.String("details", appErr.Details),
		zap.Error(appErr.Cause),
	)

	writeJSON(w, logger, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}

// decodeJSON decodes the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewValidationError("invalid JSON payload")
	}
	return nil
}
