package http

import (
	"errors"
	"net/http"

	"pancakelab/internal/api/servers"
	"pancakelab/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an error to the HTTP status code of its kind.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindIllegalState:
		return http.StatusConflict
	case errs.KindUnavailable:
		return http.StatusServiceUnavailable
	case errs.KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := StatusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// ErrorHandler replaces echo's default handler so that routing and
// validation failures share the servers.Error body with handler failures.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	if writeErr := writeError(ctx, err); writeErr != nil {
		ctx.Logger().Error(writeErr)
	}
}
