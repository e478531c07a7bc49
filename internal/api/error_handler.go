package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The code
// field mirrors the HTTP status so clients can branch without inspecting the
// transport layer.
type errorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders typed domain errors with their own status and message.
//   - Maps Echo's errors (bind failures, 404 from the router) to the same shape.
//   - Logs anything unexpected and answers with an opaque 500, never leaking
//     internal details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg, Code: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var de *domain.Error
	if errors.As(err, &de) {
		if de.Code < http.StatusInternalServerError {
			return de.Code, de.Message
		}
		// Typed 5xx still hides its message from the client.
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("internal error")
		return http.StatusInternalServerError, "Internal server error"
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
