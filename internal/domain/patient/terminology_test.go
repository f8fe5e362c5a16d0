package patient

import (
	"testing"

	"github.com/ehr/patientbuilder/pkg/fhirmodels"
)

func TestLookupMaritalStatus(t *testing.T) {
	tests := []struct {
		code    string
		display string
		system  string
	}{
		{"A", "Annulled", fhirmodels.SystemMaritalStatus},
		{"D", "Divorced", fhirmodels.SystemMaritalStatus},
		{"I", "Interlocutory", fhirmodels.SystemMaritalStatus},
		{"L", "Legally Separated", fhirmodels.SystemMaritalStatus},
		{"M", "Married", fhirmodels.SystemMaritalStatus},
		{"P", "Polygamous", fhirmodels.SystemMaritalStatus},
		{"S", "Never Married", fhirmodels.SystemMaritalStatus},
		{"T", "Domestic partner", fhirmodels.SystemMaritalStatus},
		{"U", "unmarried", fhirmodels.SystemMaritalStatus},
		{"W", "Widowed", fhirmodels.SystemMaritalStatus},
		{"UNK", "unknown", fhirmodels.SystemNullFlavor},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, ok := LookupMaritalStatus(tt.code)
			if !ok {
				t.Fatalf("LookupMaritalStatus(%q) not found", tt.code)
			}
			if c.Code != tt.code || c.Display != tt.display || c.System != tt.system {
				t.Errorf("LookupMaritalStatus(%q) = %+v", tt.code, c)
			}
		})
	}

	if _, ok := LookupMaritalStatus("unk"); ok {
		t.Error("lookup must be case-sensitive")
	}
}

func TestLookupRace(t *testing.T) {
	tests := map[string]string{
		"American Indian or Alaska Native":          "1002-5",
		"Asian":                                     "2028-9",
		"Black or African American":                 "2054-5",
		"Native Hawaiian or Other Pacific Islander": "2076-8",
		"White":                                     "2106-3",
	}
	for display, code := range tests {
		t.Run(display, func(t *testing.T) {
			c, ok := LookupRace(display)
			if !ok {
				t.Fatalf("LookupRace(%q) not found", display)
			}
			if c.Code != code || c.Display != display || c.System != fhirmodels.SystemOMBRace {
				t.Errorf("LookupRace(%q) = %+v", display, c)
			}
		})
	}

	if _, ok := LookupRace("white"); ok {
		t.Error("lookup must match the display exactly")
	}
}
