package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/validation"
)

const internalErrorMessage = "internal server error"

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess wraps data in the success envelope.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, api.Success(data))
}

// WriteErrorAndStatusCode maps err to a status code and writes the error envelope.
// Anything that is not a known client error is a 500 and its message is not exposed.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode, message := StatusOf(err)
	if statusCode >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		WriteJSON(w, statusCode, api.ErrorResponse{Status: api.StatusError, Message: message})
		return
	}
	WriteJSON(w, statusCode, api.ErrorResponse{Status: api.StatusFail, Message: message})
}

func StatusOf(err error) (int, string) {
	var statusErr *internal_errors.ErrorWithStatusCode
	var validationErr *internal_errors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, validation.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "Request body too large"
	case errors.As(err, &statusErr):
		return statusErr.StatusCode, statusErr.Message
	default:
		// default error is 500
		return http.StatusInternalServerError, internalErrorMessage
	}
}
