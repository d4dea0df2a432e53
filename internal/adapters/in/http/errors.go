package http

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice/internal/core/domain/model/manifest"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	msgNotFound       = "Not found."
	msgValidation     = "Validation failed."
	msgInternal       = "Internal server error."
	msgInvalidRequest = "Invalid request body."
)

// ErrorResponse is the envelope of every non-2xx response.
type ErrorResponse struct {
	Message    string          `json:"message"`
	Violations []errs.Violation `json:"violations,omitempty"`
}

// NewHTTPErrorHandler maps the error taxonomy to status codes. Unexpected errors
// are logged and reported as a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	log = log.With().Str("component", "http_error_handler").Logger()
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, ErrorResponse) {
	var (
		he         *echo.HTTPError
		validation *errs.ValidationError
		rejection  *manifest.RejectionError
		conflict   *errs.StateConflictError
		invalid    *errs.ValueIsInvalidError
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.As(err, &he):
		return he.Code, ErrorResponse{Message: fmt.Sprintf("%v", he.Message)}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ErrorResponse{Message: msgNotFound}
	case errors.As(err, &conflict):
		metrics.StateConflictsTotal.WithLabelValues(conflict.Entity).Inc()
		return http.StatusForbidden, ErrorResponse{Message: conflict.Reason}
	case errors.As(err, &rejection):
		return http.StatusBadRequest, ErrorResponse{Message: rejection.Message}
	case errors.As(err, &validation):
		return http.StatusBadRequest, ErrorResponse{Message: msgValidation, Violations: validation.Violations}
	case errors.As(err, &invalid):
		if errors.Is(invalid.Cause, shipment.ErrTooManyPackages) {
			return http.StatusBadRequest, ErrorResponse{Message: shipment.ErrTooManyPackages.Error()}
		}
		return http.StatusBadRequest, violation(invalid.ParamName, "This value is not valid.")
	case errors.As(err, &required):
		return http.StatusBadRequest, violation(required.ParamName, "This value should not be blank.")
	case errors.As(err, &outOfRange):
		return http.StatusBadRequest, violation(outOfRange.ParamName,
			fmt.Sprintf("This value should be between %v and %v.", outOfRange.Min, outOfRange.Max))
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, ErrorResponse{Message: msgInternal}
}

func violation(path, message string) ErrorResponse {
	return ErrorResponse{
		Message:    msgValidation,
		Violations: []errs.Violation{{Path: path, Message: message}},
	}
}
