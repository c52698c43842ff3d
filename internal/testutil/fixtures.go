package testutil

import (
	"strconv"

	"github.com/alexanderramin/wallplanner/internal/domain"
)

// SettingsOption customizes settings built by NewTestSettings.
type SettingsOption func(*domain.PlannerSettings)

func WithPreset(p domain.PaperPreset) SettingsOption {
	return func(s *domain.PlannerSettings) {
		tmpl, err := domain.WithPaperPreset(p)
		if err != nil {
			panic(err)
		}
		for i := range tmpl.Columns {
			tmpl.Columns[i].ID = "c" + strconv.Itoa(i+1)
		}
		*s = tmpl
	}
}

// WithColumns replaces the column list with labelled columns of the given
// widths. Ids are deterministic: c1, c2, ...
func WithColumns(labels []string, widths []float64) SettingsOption {
	return func(s *domain.PlannerSettings) {
		cols := make([]domain.PlannerColumn, len(labels))
		for i, l := range labels {
			cols[i] = domain.PlannerColumn{ID: "c" + strconv.Itoa(i+1), Label: l, WidthMm: widths[i]}
		}
		s.Columns = cols
	}
}

func WithMondayStart(on bool) SettingsOption {
	return func(s *domain.PlannerSettings) {
		s.WeekStartsOnMonday = on
	}
}

func WithMiniCalendars(on bool) SettingsOption {
	return func(s *domain.PlannerSettings) {
		s.ShowMiniCalendars = on
	}
}

func WithWeekendStyle(w domain.WeekendStyle) SettingsOption {
	return func(s *domain.PlannerSettings) {
		s.WeekendTextStyle = w
	}
}

// NewTestSettings returns Letter defaults with stable column ids, then
// applies opts in order.
func NewTestSettings(opts ...SettingsOption) domain.PlannerSettings {
	s := domain.DefaultSettings()
	for i := range s.Columns {
		s.Columns[i].ID = "c" + strconv.Itoa(i+1)
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
