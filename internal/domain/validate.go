package domain

import (
	"fmt"
	"math"
)

// ValidateSettings checks settings that arrive from outside the process
// (decoded links, stored state) for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSettings(s *PlannerSettings) []error {
	if s == nil {
		return []error{fmt.Errorf("settings are required")}
	}

	var errs []error

	if _, err := ParsePaperPreset(string(s.PaperPreset)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseFontFamily(string(s.FontFamily)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseWeekendStyle(string(s.WeekendTextStyle)); err != nil {
		errs = append(errs, err)
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"pageWidthMm", s.PageWidthMm},
		{"pageHeightMm", s.PageHeightMm},
		{"headerYearSizePt", s.HeaderYearSizePt},
		{"headerMonthSizePt", s.HeaderMonthSizePt},
		{"miniCalendarFontPt", s.MiniCalendarFontPt},
		{"rowHeightMm", s.RowHeightMm},
		{"dayColWidthMm", s.DayColWidthMm},
		{"dayColWeekdayWidthMm", s.DayColWeekdayWidthMm},
		{"lineWeightPt", s.LineWeightPt},
		{"bodyFontPt", s.BodyFontPt},
	}
	for _, f := range positive {
		if !isFinite(f.v) || f.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive number, got %v", f.name, f.v))
		}
	}

	// Margins and the header gap may legitimately be zero.
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"marginTopMm", s.MarginTopMm},
		{"marginRightMm", s.MarginRightMm},
		{"marginBottomMm", s.MarginBottomMm},
		{"marginLeftMm", s.MarginLeftMm},
		{"headerTopGapMm", s.HeaderTopGapMm},
	}
	for _, f := range nonNegative {
		if !isFinite(f.v) || f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", f.name, f.v))
		}
	}

	if len(s.Columns) == 0 {
		errs = append(errs, fmt.Errorf("at least one column is required"))
	}
	ids := map[string]bool{}
	for i, c := range s.Columns {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("column[%d]: id is required", i))
		}
		if ids[c.ID] && c.ID != "" {
			errs = append(errs, fmt.Errorf("column[%d]: duplicate id %q", i, c.ID))
		}
		ids[c.ID] = true
		if !isFinite(c.WidthMm) || c.WidthMm <= 0 {
			errs = append(errs, fmt.Errorf("column[%d]: widthMm must be a positive number, got %v", i, c.WidthMm))
		}
	}

	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
