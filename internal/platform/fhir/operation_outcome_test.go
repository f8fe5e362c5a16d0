package fhir

import (
	"strings"
	"testing"
)

func TestNewOperationOutcome(t *testing.T) {
	oo := NewOperationOutcome(IssueSeverityError, IssueTypeProcessing, "something went wrong")

	if oo.ResourceType != "OperationOutcome" {
		t.Errorf("expected OperationOutcome, got %s", oo.ResourceType)
	}
	if len(oo.Issue) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(oo.Issue))
	}
	issue := oo.Issue[0]
	if issue.Severity != "error" || issue.Code != "processing" || issue.Diagnostics != "something went wrong" {
		t.Errorf("unexpected issue: %+v", issue)
	}
}

func TestOutcomeConstructors(t *testing.T) {
	tests := []struct {
		name     string
		outcome  *OperationOutcome
		wantCode string
		wantDiag string
	}{
		{"error", ErrorOutcome("boom"), IssueTypeProcessing, "boom"},
		{"structure", StructureOutcome("not an object"), IssueTypeStructure, "not an object"},
		{"invalid", InvalidOutcome("Path traversal detected"), IssueTypeInvalid, "Path traversal"},
		{"not supported", NotSupportedOutcome("XML"), IssueTypeNotSupported, "XML"},
		{"throttle", ThrottleOutcome(), IssueTypeThrottled, "Rate limit exceeded"},
		{"timeout", TimeoutOutcome(), IssueTypeTimeout, "time limit"},
		{"too costly", TooCostlyOutcome(1024), IssueTypeTooCostly, "1024 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.outcome.HasErrors() {
				t.Error("expected outcome to report errors")
			}
			issue := tt.outcome.Issue[0]
			if issue.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", issue.Code, tt.wantCode)
			}
			if !strings.Contains(issue.Diagnostics, tt.wantDiag) {
				t.Errorf("diagnostics = %q, want it to contain %q", issue.Diagnostics, tt.wantDiag)
			}
		})
	}
}

func TestOperationOutcome_HasErrors(t *testing.T) {
	tests := []struct {
		severity string
		want     bool
	}{
		{IssueSeverityFatal, true},
		{IssueSeverityError, true},
		{IssueSeverityWarning, false},
		{IssueSeverityInformation, false},
	}
	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			oo := NewOperationOutcome(tt.severity, IssueTypeProcessing, "")
			if got := oo.HasErrors(); got != tt.want {
				t.Errorf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}

	if (&OperationOutcome{}).HasErrors() {
		t.Error("empty outcome should not report errors")
	}
}

func TestOperationOutcome_JSON(t *testing.T) {
	b, err := Marshal(StructureOutcome("bad body"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{
  "resourceType": "OperationOutcome",
  "issue": [
    {
      "severity": "error",
      "code": "structure",
      "diagnostics": "bad body"
    }
  ]
}`
	if string(b) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", b, want)
	}
}
