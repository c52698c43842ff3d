package printhost

import (
	"context"

	"github.com/alexanderramin/wallplanner/internal/codec"
	"github.com/alexanderramin/wallplanner/internal/domain"
	"go.uber.org/zap"
)

// Source names where resolved settings came from.
type Source string

const (
	SourceLink    Source = "link"
	SourceStored  Source = "stored"
	SourceDefault Source = "default"
)

// StateReader is the read side of the local state store.
type StateReader interface {
	Read(ctx context.Context) *domain.StoredPlannerState
}

// Resolver picks the settings for a print request.
type Resolver struct {
	state  StateReader
	logger *zap.Logger
}

// NewResolver returns a Resolver. state may be nil when no store is
// configured.
func NewResolver(state StateReader, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{state: state, logger: logger.Named("resolver")}
}

// Resolve returns, in priority order, the decoded link payload, the stored
// session's settings, or the Letter template. Candidates that fail
// validation are skipped. The result is always preset-normalized.
func (r *Resolver) Resolve(ctx context.Context, encoded string) (domain.PlannerSettings, Source) {
	if encoded != "" {
		if s, ok := r.fromLink(encoded); ok {
			return s, SourceLink
		}
	}

	if r.state != nil {
		if st := r.state.Read(ctx); st != nil {
			errs := domain.ValidateSettings(&st.Settings)
			if len(errs) == 0 {
				return domain.NormalizePaperPreset(st.Settings), SourceStored
			}
			r.logger.Debug("ignoring invalid stored settings", zap.Errors("problems", errs))
		}
	}

	return domain.DefaultSettings(), SourceDefault
}

func (r *Resolver) fromLink(encoded string) (domain.PlannerSettings, bool) {
	s, ok := codec.Decode(encoded)
	if !ok {
		r.logger.Debug("ignoring undecodable link settings", zap.Int("length", len(encoded)))
		return domain.PlannerSettings{}, false
	}
	if errs := domain.ValidateSettings(s); len(errs) > 0 {
		r.logger.Debug("ignoring invalid link settings", zap.Errors("problems", errs))
		return domain.PlannerSettings{}, false
	}
	return domain.NormalizePaperPreset(*s), true
}
