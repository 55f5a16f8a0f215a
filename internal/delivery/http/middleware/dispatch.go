package middleware

import (
	"net/http"

	domainerrors "tnp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errNoResponse = errors.New("handler returned without writing a response")

// Dispatch guarantees that each invocation of next ends with exactly one of a
// written response or an error handed to the error renderer. Panics are turned
// into server errors instead of unwinding the request goroutine.
func Dispatch(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if r == http.ErrAbortHandler {
					panic(r)
				}
				err = domainerrors.ErrInternalError.WithCause(panicError(r))
			}

			if err == nil && !c.Response().Committed {
				err = domainerrors.ErrInternalError.WithCause(errNoResponse)
			}
		}()

		return next(c)
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return errors.Wrap(err, "panic")
	}

	return errors.Errorf("panic: %v", r)
}
