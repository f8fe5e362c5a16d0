package patient

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/ehr/patientbuilder/internal/platform/fhir"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the $build operation on the FHIR group and keeps the
// legacy POST /Fhir route on the root.
func (h *Handler) RegisterRoutes(root *echo.Echo, fhirGroup *echo.Group) {
	fhirGroup.POST("/Patient/$build", h.BuildPatientFHIR)
	root.POST("/Fhir", h.BuildPatientFHIR, fhir.ContentNegotiationMiddleware())
}

// BuildPatientFHIR reads a JSON object of string properties and responds with
// the Patient built from it. An empty body counts as an empty object.
func (h *Handler) BuildPatientFHIR(c echo.Context) error {
	props, err := decodeProperties(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return fhir.Write(c, http.StatusBadRequest, fhir.StructureOutcome(
			"request body must be a JSON object of string values: "+err.Error()))
	}

	p := h.svc.BuildPatient(c.Request().Context(), props)
	return fhir.Write(c, http.StatusOK, p)
}

func decodeProperties(body io.Reader) (PropertyMap, error) {
	props := PropertyMap{}
	if body == nil {
		return props, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return props, nil
	}
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, err
	}
	if props == nil {
		props = PropertyMap{}
	}
	return props, nil
}
