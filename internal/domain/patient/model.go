package patient

import (
	"github.com/ehr/patientbuilder/internal/platform/fhir"
	"github.com/ehr/patientbuilder/pkg/fhirmodels"
)

// PropertyMap is the flat input of the builder: dotted FHIR element paths
// (see Keys) mapped to string values.
type PropertyMap map[string]string

// Patient is the FHIR R4 Patient resource produced by Build.
//
// Name and Address always hold exactly one entry; the builder writes every
// name.* and address.* property into that single slot.
type Patient struct {
	ResourceType  string                `json:"resourceType"`
	Extension     []fhir.Extension      `json:"extension,omitempty"`
	Identifier    []fhir.Identifier     `json:"identifier,omitempty"`
	Active        *bool                 `json:"active,omitempty"`
	Name          []fhir.HumanName      `json:"name"`
	Address       []fhir.Address        `json:"address"`
	MaritalStatus *fhir.CodeableConcept `json:"maritalStatus,omitempty"`
}

// NewPatient returns an empty Patient with its single name and address slot.
func NewPatient() *Patient {
	return &Patient{
		ResourceType: fhirmodels.ResourceTypePatient,
		Name:         []fhir.HumanName{{}},
		Address:      []fhir.Address{{}},
	}
}

func (p *Patient) name() *fhir.HumanName {
	return &p.Name[0]
}

func (p *Patient) address() *fhir.Address {
	return &p.Address[0]
}

// Race returns the OMB race category attached to the patient, if any.
func (p *Patient) Race() (fhir.Coding, bool) {
	for _, ext := range p.Extension {
		if ext.URL != fhirmodels.ExtensionUSCoreRace {
			continue
		}
		for _, sub := range ext.Extension {
			if sub.URL == fhirmodels.ExtensionOMBCategory && sub.ValueCoding != nil {
				return *sub.ValueCoding, true
			}
		}
	}
	return fhir.Coding{}, false
}
