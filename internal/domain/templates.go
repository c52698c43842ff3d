package domain

import "fmt"

func letterTemplate() PlannerSettings {
	return PlannerSettings{
		PaperPreset:  PresetLetter,
		PageWidthMm:  LetterWidthMm,
		PageHeightMm: LetterHeightMm,

		MarginTopMm:    14,
		MarginRightMm:  10,
		MarginBottomMm: 10,
		MarginLeftMm:   10,

		HeaderYearSizePt:  14,
		HeaderMonthSizePt: 22,
		HeaderTopGapMm:    5,

		ShowMiniCalendars:  true,
		WeekStartsOnMonday: true,
		MiniCalendarFontPt: 7,

		RowHeightMm:          7.7,
		DayColWidthMm:        22,
		DayColWeekdayWidthMm: 14,
		LineWeightPt:         0.55,

		Columns: []PlannerColumn{
			{ID: NewColumnID(), Label: "Notes", WidthMm: 52},
			{ID: NewColumnID(), Label: "Meals", WidthMm: 40},
			{ID: NewColumnID(), Label: "Workout", WidthMm: 32},
			{ID: NewColumnID(), Label: "To-dos", WidthMm: 40},
		},

		FontFamily: FontSans,
		BodyFontPt: 8.5,

		WeekendTextStyle: WeekendRed,
	}
}

func a3Template() PlannerSettings {
	return PlannerSettings{
		PaperPreset:  PresetA3,
		PageWidthMm:  297,
		PageHeightMm: 420,

		MarginTopMm:    18,
		MarginRightMm:  12,
		MarginBottomMm: 12,
		MarginLeftMm:   12,

		HeaderYearSizePt:  18,
		HeaderMonthSizePt: 28,
		HeaderTopGapMm:    6,

		ShowMiniCalendars:  true,
		WeekStartsOnMonday: true,
		MiniCalendarFontPt: 7.5,

		RowHeightMm:          10.5,
		DayColWidthMm:        28,
		DayColWeekdayWidthMm: 18,
		LineWeightPt:         0.6,

		Columns: []PlannerColumn{
			{ID: NewColumnID(), Label: "Notes", WidthMm: 70},
			{ID: NewColumnID(), Label: "Meals", WidthMm: 55},
			{ID: NewColumnID(), Label: "Workout", WidthMm: 45},
			{ID: NewColumnID(), Label: "To-dos", WidthMm: 55},
			{ID: NewColumnID(), Label: "Misc", WidthMm: 32},
		},

		FontFamily: FontSans,
		BodyFontPt: 9,

		WeekendTextStyle: WeekendRed,
	}
}

// defaultTemplates is the canonical catalog. It is never handed out
// directly; callers get clones from WithPaperPreset.
var defaultTemplates = func() map[PaperPreset]PlannerSettings {
	letter := letterTemplate()
	a4 := letter.Clone()
	a4.PaperPreset = PresetA4
	return map[PaperPreset]PlannerSettings{
		PresetA3:     a3Template(),
		PresetLetter: letter,
		PresetA4:     a4,
	}
}()

// WithPaperPreset returns an independent copy of the named default template.
func WithPaperPreset(p PaperPreset) (PlannerSettings, error) {
	tmpl, ok := defaultTemplates[p]
	if !ok {
		return PlannerSettings{}, fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}
	return tmpl.Clone(), nil
}

// DefaultSettings returns a copy of the Letter template, the last resort
// whenever nothing better is available.
func DefaultSettings() PlannerSettings {
	return defaultTemplates[PresetLetter].Clone()
}
