package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ehr/patientbuilder/internal/platform/fhir"
)

const maxHeaderValueSize = 8 << 10

var scriptPattern = regexp.MustCompile(`(?i)(<script|javascript\s*:|on\w+\s*=)`)

// Sanitize rejects requests whose path, headers or query string carry
// traversal sequences, null bytes, header injection or script payloads.
// Rejected requests get 400 with an OperationOutcome and a warn log line.
// The JSON body is not inspected; property values are copied verbatim.
func Sanitize(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if reason := inspect(c.Request()); reason != "" {
				logger.Warn().
					Str("request_id", GetRequestID(c)).
					Str("path", c.Request().URL.Path).
					Str("remote_ip", c.RealIP()).
					Str("reason", reason).
					Msg("request rejected")
				return fhir.Write(c, http.StatusBadRequest, fhir.InvalidOutcome(reason))
			}
			return next(c)
		}
	}
}

// inspect returns why req must be rejected, or "".
func inspect(req *http.Request) string {
	path := req.URL.Path
	rawPath := req.URL.EscapedPath()

	if hasTraversal(path) || hasTraversal(rawPath) {
		return "Path traversal detected"
	}
	if hasNullByte(path) || hasNullByte(rawPath) {
		return "Null byte injection detected"
	}

	for name, values := range req.Header {
		for _, v := range values {
			if len(v) > maxHeaderValueSize {
				return "Header value exceeds maximum size: " + name
			}
			if strings.ContainsAny(v, "\r\n") {
				return "Header injection detected: " + name
			}
		}
	}

	for key, values := range req.URL.Query() {
		for _, v := range values {
			if hasNullByte(key) || hasNullByte(v) {
				return "Null byte injection detected in query parameter"
			}
			if scriptPattern.MatchString(key) || scriptPattern.MatchString(v) {
				return "Script injection detected in query parameter"
			}
		}
	}
	return ""
}

func hasTraversal(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(s, "..") ||
		strings.Contains(lower, "%2e%2e") ||
		strings.Contains(lower, "%252e")
}

func hasNullByte(s string) bool {
	return strings.ContainsRune(s, '\x00') || strings.Contains(strings.ToLower(s), "%00")
}
