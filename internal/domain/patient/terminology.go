package patient

import (
	"github.com/ehr/patientbuilder/internal/platform/fhir"
	"github.com/ehr/patientbuilder/pkg/fhirmodels"
)

// maritalStatuses is keyed by code. Lookups are exact and case-sensitive.
var maritalStatuses = map[string]fhir.Coding{
	fhirmodels.MaritalAnnulled:         {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalAnnulled, Display: "Annulled"},
	fhirmodels.MaritalDivorced:         {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalDivorced, Display: "Divorced"},
	fhirmodels.MaritalInterlocutory:    {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalInterlocutory, Display: "Interlocutory"},
	fhirmodels.MaritalLegallySeparated: {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalLegallySeparated, Display: "Legally Separated"},
	fhirmodels.MaritalMarried:          {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalMarried, Display: "Married"},
	fhirmodels.MaritalPolygamous:       {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalPolygamous, Display: "Polygamous"},
	fhirmodels.MaritalNeverMarried:     {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalNeverMarried, Display: "Never Married"},
	fhirmodels.MaritalDomesticPartner:  {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalDomesticPartner, Display: "Domestic partner"},
	fhirmodels.MaritalUnmarried:        {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalUnmarried, Display: "unmarried"},
	fhirmodels.MaritalWidowed:          {System: fhirmodels.SystemMaritalStatus, Code: fhirmodels.MaritalWidowed, Display: "Widowed"},
	fhirmodels.MaritalUnknown:          {System: fhirmodels.SystemNullFlavor, Code: fhirmodels.MaritalUnknown, Display: "unknown"},
}

// races maps the OMB category display text to its code.
var races = map[string]string{
	"American Indian or Alaska Native":          fhirmodels.RaceAmericanIndian,
	"Asian":                                     fhirmodels.RaceAsian,
	"Black or African American":                 fhirmodels.RaceBlack,
	"Native Hawaiian or Other Pacific Islander": fhirmodels.RacePacificIslander,
	"White":                                     fhirmodels.RaceWhite,
}

// LookupMaritalStatus returns the coding for a marital status code.
func LookupMaritalStatus(code string) (fhir.Coding, bool) {
	c, ok := maritalStatuses[code]
	return c, ok
}

// LookupRace returns the OMB race coding for an exact display string. The
// display of the returned coding is the input itself.
func LookupRace(display string) (fhir.Coding, bool) {
	code, ok := races[display]
	if !ok {
		return fhir.Coding{}, false
	}
	return fhir.Coding{System: fhirmodels.SystemOMBRace, Code: code, Display: display}, true
}
