// Package panel holds the settings panel's edit operations. Every operation
// takes a settings value and returns a new one; the input is never modified.
// Numeric input is clamped to the field's bounds instead of being rejected.
package panel

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/wallplanner/internal/domain"
)

var (
	ErrUnknownField  = errors.New("unknown settings field")
	ErrUnknownColumn = errors.New("unknown column")
	ErrColumnLimit   = errors.New("column limit reached")
	ErrLastColumn    = errors.New("cannot remove the last column")
)

// NumberField describes one clamped numeric setting. Name is the JSON field
// name.
type NumberField struct {
	Name  string
	Label string
	Group string
	Min   float64
	Max   float64
	Step  float64

	ptr func(*domain.PlannerSettings) *float64
}

// Value reads the field from s.
func (f NumberField) Value(s domain.PlannerSettings) float64 {
	return *f.ptr(&s)
}

// Clamp limits v to [Min, Max]. NaN and infinities clamp to Min.
func (f NumberField) Clamp(v float64) float64 {
	return clamp(v, f.Min, f.Max)
}

var numberFields = []NumberField{
	{Name: "marginTopMm", Label: "Top (mm)", Group: "Margins", Min: 0, Max: 40, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.MarginTopMm }},
	{Name: "marginRightMm", Label: "Right (mm)", Group: "Margins", Min: 0, Max: 40, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.MarginRightMm }},
	{Name: "marginBottomMm", Label: "Bottom (mm)", Group: "Margins", Min: 0, Max: 40, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.MarginBottomMm }},
	{Name: "marginLeftMm", Label: "Left (mm)", Group: "Margins", Min: 0, Max: 40, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.MarginLeftMm }},

	{Name: "rowHeightMm", Label: "Row height (mm)", Group: "Grid", Min: 5, Max: 16, Step: 0.1,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.RowHeightMm }},
	{Name: "lineWeightPt", Label: "Line weight (pt)", Group: "Grid", Min: 0.3, Max: 1.2, Step: 0.05,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.LineWeightPt }},
	{Name: "dayColWidthMm", Label: "Day col width (mm)", Group: "Grid", Min: 16, Max: 44, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.DayColWidthMm }},
	{Name: "dayColWeekdayWidthMm", Label: "Day # block (mm)", Group: "Grid", Min: 10, Max: 30, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.DayColWeekdayWidthMm }},

	{Name: "headerYearSizePt", Label: "Year size (pt)", Group: "Header", Min: 10, Max: 28, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.HeaderYearSizePt }},
	{Name: "headerMonthSizePt", Label: "Month size (pt)", Group: "Header", Min: 16, Max: 44, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.HeaderMonthSizePt }},
	{Name: "headerTopGapMm", Label: "Header gap (mm)", Group: "Header", Min: 0, Max: 14, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.HeaderTopGapMm }},
	{Name: "bodyFontPt", Label: "Body font (pt)", Group: "Header", Min: 7, Max: 12, Step: 0.1,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.BodyFontPt }},
	{Name: "miniCalendarFontPt", Label: "Mini calendar font (pt)", Group: "Header", Min: 5, Max: 12, Step: 0.5,
		ptr: func(s *domain.PlannerSettings) *float64 { return &s.MiniCalendarFontPt }},
}

// NumberFields returns the editable numeric fields in panel order.
func NumberFields() []NumberField {
	out := make([]NumberField, len(numberFields))
	copy(out, numberFields)
	return out
}

// LookupNumber finds a numeric field by its JSON name.
func LookupNumber(name string) (NumberField, bool) {
	for _, f := range numberFields {
		if f.Name == name {
			return f, true
		}
	}
	return NumberField{}, false
}

// ToggleFields lists the boolean fields accepted by SetToggle.
var ToggleFields = []string{"showMiniCalendars", "weekStartsOnMonday"}

// SetPreset replaces the whole settings value with the named template.
func SetPreset(p domain.PaperPreset) (domain.PlannerSettings, error) {
	return domain.WithPaperPreset(p)
}

// Reset returns the template for the current preset of s.
func Reset(s domain.PlannerSettings) (domain.PlannerSettings, error) {
	return domain.WithPaperPreset(s.PaperPreset)
}

// SetNumber sets a numeric field, clamped to its bounds.
func SetNumber(s domain.PlannerSettings, field string, v float64) (domain.PlannerSettings, error) {
	f, ok := LookupNumber(field)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	next := s.Clone()
	*f.ptr(&next) = f.Clamp(v)
	return next, nil
}

// StepNumber moves a numeric field by delta steps, clamped to its bounds.
func StepNumber(s domain.PlannerSettings, field string, delta int) (domain.PlannerSettings, error) {
	f, ok := LookupNumber(field)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	v := f.Value(s) + float64(delta)*f.Step
	return SetNumber(s, field, math.Round(v*100)/100)
}

func SetToggle(s domain.PlannerSettings, field string, on bool) (domain.PlannerSettings, error) {
	next := s.Clone()
	switch field {
	case "showMiniCalendars":
		next.ShowMiniCalendars = on
	case "weekStartsOnMonday":
		next.WeekStartsOnMonday = on
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return next, nil
}

func SetFontFamily(s domain.PlannerSettings, f domain.FontFamily) domain.PlannerSettings {
	next := s.Clone()
	next.FontFamily = f
	return next
}

func SetWeekendStyle(s domain.PlannerSettings, w domain.WeekendStyle) domain.PlannerSettings {
	next := s.Clone()
	next.WeekendTextStyle = w
	return next
}

// ClampYear limits the planner year to 1900..2100.
func ClampYear(y int) int {
	return min(max(y, 1900), 2100)
}

// ClampMonth limits the month to 1..12.
func ClampMonth(m int) int {
	return min(max(m, 1), 12)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
