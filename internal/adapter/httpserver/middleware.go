package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Pratikmehata/Sentiment-app/internal/platform/correlation"
	apperrors "github.com/Pratikmehata/Sentiment-app/internal/platform/errors"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// ErrorHandlingMiddleware converts handler errors into the structured JSON
// error contract. Echo's own HTTPErrors (unmatched routes, method mismatch,
// static file misses) are folded into the same shape.
func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var structuredErr *apperrors.Error
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				structuredErr = wrapHTTPError(httpErr)
			} else {
				structuredErr = apperrors.AsStructuredError(err)
			}

			logError(c, structuredErr)

			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	switch err.Type {
	case apperrors.TypeValidation:
		slog.Info("Validation error", attrs...)
	case apperrors.TypeNotFound:
		slog.Info("Not found", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.Error("Internal error", attrs...)
	default:
		slog.Error("Unknown error type", attrs...)
	}
}

// wrapHTTPError maps Echo's HTTPError onto the structured error taxonomy so
// every error response shares one JSON shape.
func wrapHTTPError(httpErr *echo.HTTPError) *apperrors.Error {
	switch httpErr.Code {
	case http.StatusNotFound:
		return apperrors.NotFoundError("Resource not found")
	case http.StatusMethodNotAllowed:
		return apperrors.NotFoundError("Resource not found")
	case http.StatusBadRequest:
		message := "bad request"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		return apperrors.ValidationError(message)
	default:
		return apperrors.InternalError("internal server error", httpErr.Internal)
	}
}
