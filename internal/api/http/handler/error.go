package handler

import (
	"errors"
	"net/http"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
)

// handleError maps domain failures to HTTP status and envelope code.
// Anything unrecognized is logged and collapsed into a generic 500 so no
// internal detail leaks to the client.
func handleError(logger *logger.Logger, err error) (int, string, string) {
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus, apiErr.Code, apiErr.Message
	}

	if errors.Is(err, model.ErrNotFound) {
		return http.StatusNotFound, apierr.CodeTaskNotFound, "task not found"
	}

	logger.Error("unexpected error", "error", err.Error())
	return http.StatusInternalServerError, apierr.CodeServerError, "internal server error"
}
