package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "tnp/internal/delivery/context"
	"tnp/internal/delivery/http/response"
	domainerrors "tnp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that reaches echo as the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Internal details are logged and never written to the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if c.Response().Committed {
		logger.Error("Error raised after the response was sent", slog.Any("error", err))

		return
	}

	appErr := m.toAppError(err, logger)

	if req.Method == http.MethodHead {
		err = c.NoContent(appErr.HTTPCode())
	} else {
		err = response.WriteError(c, appErr)
	}
	if err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) toAppError(err error, logger *slog.Logger) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		} else if errors.Unwrap(appErr) != nil {
			logger.Debug("Request rejected", slog.Any("error", err))
		}

		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))

			return domainerrors.ErrInternalError
		}

		return domainerrors.New(categoryForStatus(httpErr.Code), httpMessage(httpErr), nil, httpErr.Code)
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	return domainerrors.ErrInternalError
}

func categoryForStatus(code int) domainerrors.Category {
	switch code {
	case http.StatusUnauthorized:
		return domainerrors.CategoryUnauthorized
	case http.StatusForbidden:
		return domainerrors.CategoryForbidden
	case http.StatusNotFound:
		return domainerrors.CategoryNotFound
	case http.StatusConflict:
		return domainerrors.CategoryConflict
	case http.StatusUnprocessableEntity:
		return domainerrors.CategoryUnprocessable
	default:
		if code >= http.StatusInternalServerError {
			return domainerrors.CategoryServer
		}

		return domainerrors.CategoryBadRequest
	}
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
