package fhir

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HTTPErrorHandler returns an echo error handler that renders every error
// as an OperationOutcome. Errors that are not *echo.HTTPError are logged and
// reported as 500 without leaking their text.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		diagnostics := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			diagnostics = fmt.Sprintf("%v", he.Message)
			if he.Internal != nil {
				logger.Debug().Err(he.Internal).Int("status", status).Msg("http error")
			}
		} else {
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(err).Str("request_id", rid).Msg("unhandled error")
		}

		outcome := OutcomeForStatus(status, diagnostics)
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = Write(c, status, outcome)
		}
		if err != nil {
			logger.Error().Err(err).Msg("failed to write error response")
		}
	}
}
