package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/logger"
)

const (
	maxBodyBytes         = 1 << 20
	invalidInputMessage  = "Please check your input and try again."
	internalErrorMessage = "Unable to process your request. Please try again later."
)

// Response is the envelope for write endpoints
type Response struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// writeAppError maps a service error to its status. Internal detail is
// logged and replaced by a generic message.
func writeAppError(w http.ResponseWriter, log logger.Logger, err error) {
	appErr := apperror.From(err)
	status := apperror.HTTPStatus(appErr.Code)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed", nil)
		writeError(w, status, internalErrorMessage)
		return
	}
	writeJSON(w, status, Response{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}

// decodeJSON reads a JSON body into dst; an empty body leaves dst untouched
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.Validation(invalidInputMessage, apperror.FieldError{
			Field:   "body",
			Message: "Request body must be valid JSON",
		})
	}
	return nil
}
