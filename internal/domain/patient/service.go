package patient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ehr/patientbuilder/internal/platform/fhir"
)

type Service struct {
	logger zerolog.Logger
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{logger: logger}
}

// BuildPatient builds a Patient from props and logs which keys were ignored.
// A request-scoped logger on ctx takes precedence over the service logger.
func (s *Service) BuildPatient(ctx context.Context, props PropertyMap) *Patient {
	log := s.loggerFrom(ctx)

	p := Build(props)

	if ignored := Unrecognized(props); len(ignored) > 0 {
		log.Warn().Strs("keys", ignored).Msg("ignored unrecognized patient properties")
	}
	log.Debug().
		Int("properties", len(props)).
		Bool("marital_status", p.MaritalStatus != nil).
		Bool("race", len(p.Extension) > 0).
		Msg("patient built")

	return p
}

// Render serializes a Patient as pretty-printed FHIR JSON.
func (s *Service) Render(p *Patient) ([]byte, error) {
	return fhir.Marshal(p)
}

func (s *Service) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
