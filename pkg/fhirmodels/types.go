package fhirmodels

// Common FHIR value set constants used across the application.

// ResourceType names.
const (
	ResourceTypePatient          = "Patient"
	ResourceTypeOperationOutcome = "OperationOutcome"
)

// IdentifierUse codes per FHIR R4.
const (
	IdentifierUseUsual     = "usual"
	IdentifierUseOfficial  = "official"
	IdentifierUseTemp      = "temp"
	IdentifierUseSecondary = "secondary"
	IdentifierUseOld       = "old"
)

// Code system URIs.
const (
	SystemMaritalStatus = "http://terminology.hl7.org/CodeSystem/v3-MaritalStatus"
	SystemNullFlavor    = "http://terminology.hl7.org/CodeSystem/v3-NullFlavor"
	SystemOMBRace       = "urn:oid:2.16.840.1.113883.6.238"
)

// US Core extension URLs.
const (
	ExtensionUSCoreRace  = "http://hl7.org/fhir/us/core/StructureDefinition/us-core-race"
	ExtensionOMBCategory = "ombCategory"
)

// MaritalStatus codes (v3-MaritalStatus, plus UNK from v3-NullFlavor).
const (
	MaritalAnnulled         = "A"
	MaritalDivorced         = "D"
	MaritalInterlocutory    = "I"
	MaritalLegallySeparated = "L"
	MaritalMarried          = "M"
	MaritalPolygamous       = "P"
	MaritalNeverMarried     = "S"
	MaritalDomesticPartner  = "T"
	MaritalUnmarried        = "U"
	MaritalWidowed          = "W"
	MaritalUnknown          = "UNK"
)

// OMB race category codes.
const (
	RaceAmericanIndian  = "1002-5"
	RaceAsian           = "2028-9"
	RaceBlack           = "2054-5"
	RacePacificIslander = "2076-8"
	RaceWhite           = "2106-3"
)
