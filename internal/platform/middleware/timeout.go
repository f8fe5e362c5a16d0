package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ehr/patientbuilder/internal/platform/fhir"
)

// RequestTimeout puts a deadline on each request context. When the handler
// has not returned by then, the client gets 504 with an OperationOutcome.
// A zero timeout disables the middleware.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if timeout <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					// Client went away.
					return ctx.Err()
				}
				if c.Response().Committed {
					return nil
				}
				return fhir.Write(c, http.StatusGatewayTimeout, fhir.TimeoutOutcome())
			}
		}
	}
}
