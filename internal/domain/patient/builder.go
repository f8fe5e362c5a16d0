package patient

import (
	"sort"
	"strings"

	"github.com/ehr/patientbuilder/internal/platform/fhir"
	"github.com/ehr/patientbuilder/pkg/fhirmodels"
)

// setter writes one property value into the patient.
type setter func(p *Patient, value string)

type property struct {
	key string
	set setter
}

// properties is the recognized vocabulary. Build applies it in this order,
// so the output never depends on map iteration order.
var properties = []property{
	{"identifier", setIdentifier},
	{"active", setActive},
	{"name.family", func(p *Patient, v string) { p.name().Family = v }},
	{"name.given", func(p *Patient, v string) { p.name().Given = []string{v} }},
	{"address.line", func(p *Patient, v string) { p.address().Line = []string{v} }},
	{"address.city", func(p *Patient, v string) { p.address().City = v }},
	{"address.district", func(p *Patient, v string) { p.address().District = v }},
	{"address.state", func(p *Patient, v string) { p.address().State = v }},
	{"address.postalCode", func(p *Patient, v string) { p.address().PostalCode = v }},
	{"address.country", func(p *Patient, v string) { p.address().Country = v }},
	{"maritalStatus", setMaritalStatus},
	{"race", setRace},
}

var recognized = func() map[string]bool {
	m := make(map[string]bool, len(properties))
	for _, prop := range properties {
		m[prop.key] = true
	}
	return m
}()

// Build creates a Patient from props. It never fails: unknown keys are
// ignored, an unparsable "active" becomes false and unknown marital status
// or race values leave the element out.
func Build(props PropertyMap) *Patient {
	p := NewPatient()
	for _, prop := range properties {
		if v, ok := props[prop.key]; ok {
			prop.set(p, v)
		}
	}
	n := p.name()
	n.Text = n.FirstGiven() + " " + n.Family
	return p
}

// Keys returns the recognized property keys in the order Build applies them.
func Keys() []string {
	keys := make([]string, len(properties))
	for i, prop := range properties {
		keys[i] = prop.key
	}
	return keys
}

// Unrecognized returns the sorted keys of props that Build ignores.
func Unrecognized(props PropertyMap) []string {
	var out []string
	for k := range props {
		if !recognized[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func setIdentifier(p *Patient, v string) {
	p.Identifier = []fhir.Identifier{{Use: fhirmodels.IdentifierUseOfficial, Value: v}}
}

// setActive accepts "true" or "false" in any case, surrounded by optional
// whitespace. Anything else sets active to false.
func setActive(p *Patient, v string) {
	active := strings.EqualFold(strings.TrimSpace(v), "true")
	p.Active = &active
}

func setMaritalStatus(p *Patient, v string) {
	coding, ok := LookupMaritalStatus(v)
	if !ok || coding.Code == "" {
		return
	}
	p.MaritalStatus = &fhir.CodeableConcept{Coding: []fhir.Coding{coding}}
}

func setRace(p *Patient, v string) {
	coding, ok := LookupRace(v)
	if !ok || coding.Code == "" {
		return
	}
	p.Extension = append(p.Extension, fhir.Extension{
		URL: fhirmodels.ExtensionUSCoreRace,
		Extension: []fhir.Extension{
			{URL: fhirmodels.ExtensionOMBCategory, ValueCoding: &coding},
		},
	})
}
