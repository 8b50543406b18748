package v1

import (
	"errors"
	"net/http"

	"github.com/budget-tracker/backend/internal/archive"
	"github.com/budget-tracker/backend/internal/export"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/budget-tracker/backend/internal/storage"
	"github.com/budget-tracker/backend/internal/validate"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string        `json:"error" example:"amount must be greater than 0 and at most 999999999"`
	Kind  validate.Kind `json:"kind,omitempty" example:"out_of_range"` // Kind of the validation failure, if the request was invalid
	Field string        `json:"field,omitempty" example:"amount"`      // Field that failed validation
}

var (
	errCleanupConfirmation = errors.New("the confirmation for deleting all transactions was incorrect")
	errInvalidFilterType   = errors.New("the type query parameter must be 'income' or 'expense'")
	errInvalidFormat       = errors.New("the format query parameter must be 'json' or 'csv'")
	errMonthNotSet         = errors.New("the month must be set in the format YYYY-MM")
	errNoFile              = errors.New("you must send a file to this endpoint")
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, storage.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, profile.ErrNotFound), errors.Is(err, profile.ErrUnknownProfile):
		return http.StatusNotFound
	case errors.Is(err, archive.ErrAlreadyExists), errors.Is(err, profile.ErrNoActiveProfile):
		return http.StatusConflict
	case errors.Is(err, profile.ErrWrongPIN), errors.Is(err, profile.ErrLocked):
		return http.StatusForbidden
	case errors.Is(err, validate.ErrValidation),
		errors.Is(err, export.ErrInvalidFormat),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidID),
		errors.Is(err, httputil.ErrInvalidUUID):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func newHTTPError(err error) httpError {
	e := httpError{Error: err.Error()}
	if v, ok := validate.As(err); ok {
		e.Kind = v.Kind
		e.Field = v.Field
	}

	return e
}

// renderError writes the error response. Server errors are logged.
func renderError(c *gin.Context, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(code, newHTTPError(err))
}

// badRequest renders errors of the request itself.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, newHTTPError(err))
}
