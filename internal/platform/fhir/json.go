package fhir

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

const jsonIndent = "  "

// Marshal renders a resource as pretty-printed FHIR JSON.
func Marshal(v interface{}) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("marshal fhir resource: %w", err)
	}
	return b, nil
}

// Write serializes v with Marshal and writes it as application/fhir+json.
func Write(c echo.Context, status int, v interface{}) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, FHIRContentType, b)
}
