package http

import (
	"errors"
	"net/http"

	"dealerorders/internal/core/ports"
	"dealerorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusOf classifies an application error.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrTransitionIsRejected),
		errors.Is(err, ports.ErrLockNotObtained):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders errors as Error. Internal errors are logged and
// reported without detail.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := Error{Code: StatusOf(err), Message: err.Error()}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			body.Code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				body.Message = msg
			} else {
				body.Message = http.StatusText(httpErr.Code)
			}
		}

		if body.Code == http.StatusInternalServerError {
			log.WithError(err).WithField("uri", c.Request().RequestURI).Error("internal error")
			body.Message = http.StatusText(http.StatusInternalServerError)
		}

		if writeErr := c.JSON(body.Code, body); writeErr != nil {
			log.WithError(writeErr).Warn("write error response")
		}
	}
}
