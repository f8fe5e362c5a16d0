package fhir

import (
	"fmt"
	"net/http"
)

// StructureOutcome creates a 400-style OperationOutcome for a request body
// that cannot be read as the expected structure.
func StructureOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeStructure, diagnostics)
}

// NotSupportedOutcome creates an OperationOutcome for a request the server
// understands but will not serve, such as an XML format.
func NotSupportedOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeNotSupported, diagnostics)
}

// ThrottleOutcome creates a 429-style OperationOutcome indicating the server is
// rate-limiting the client.
func ThrottleOutcome() *OperationOutcome {
	return NewOperationOutcome(
		IssueSeverityError,
		IssueTypeThrottled,
		"Rate limit exceeded. Please retry after a delay.",
	)
}

// InvalidOutcome creates an OperationOutcome for a request rejected as
// malformed or hostile.
func InvalidOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeInvalid, diagnostics)
}

// TimeoutOutcome creates a 504-style OperationOutcome.
func TimeoutOutcome() *OperationOutcome {
	return NewOperationOutcome(
		IssueSeverityError,
		IssueTypeTimeout,
		"Request processing exceeded the allowed time limit",
	)
}

// TooCostlyOutcome creates a 413-style OperationOutcome for an oversized body.
func TooCostlyOutcome(limit int64) *OperationOutcome {
	return NewOperationOutcome(
		IssueSeverityError,
		IssueTypeTooCostly,
		fmt.Sprintf("Request body exceeds maximum allowed size of %d bytes", limit),
	)
}

// OutcomeForStatus maps an HTTP status to an OperationOutcome carrying the
// given diagnostics.
func OutcomeForStatus(status int, diagnostics string) *OperationOutcome {
	code := IssueTypeProcessing
	switch status {
	case http.StatusBadRequest:
		code = IssueTypeStructure
	case http.StatusUnauthorized, http.StatusForbidden:
		code = IssueTypeSecurity
	case http.StatusNotFound:
		code = IssueTypeNotFound
	case http.StatusMethodNotAllowed, http.StatusNotAcceptable, http.StatusUnsupportedMediaType:
		code = IssueTypeNotSupported
	case http.StatusRequestEntityTooLarge:
		code = IssueTypeTooCostly
	case http.StatusTooManyRequests:
		code = IssueTypeThrottled
	case http.StatusGatewayTimeout, http.StatusServiceUnavailable:
		code = IssueTypeTimeout
	case http.StatusInternalServerError:
		code = IssueTypeException
	}
	return NewOperationOutcome(IssueSeverityError, code, diagnostics)
}
