package domain

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

var ErrUnknownPreset = errors.New("unknown paper preset")

// Letter page size in millimetres. The a4 alias is forced onto these.
const (
	LetterWidthMm  = 215.9
	LetterHeightMm = 279.4
)

// PlannerColumn is one writable column to the right of the day column.
type PlannerColumn struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	WidthMm float64 `json:"widthMm"`
}

// PlannerSettings describes a complete planner template. Values are treated
// as immutable once shared; edits go through Clone.
type PlannerSettings struct {
	PaperPreset PaperPreset `json:"paperPreset"`

	PageWidthMm  float64 `json:"pageWidthMm"`
	PageHeightMm float64 `json:"pageHeightMm"`

	MarginTopMm    float64 `json:"marginTopMm"`
	MarginRightMm  float64 `json:"marginRightMm"`
	MarginBottomMm float64 `json:"marginBottomMm"`
	MarginLeftMm   float64 `json:"marginLeftMm"`

	HeaderYearSizePt  float64 `json:"headerYearSizePt"`
	HeaderMonthSizePt float64 `json:"headerMonthSizePt"`
	HeaderTopGapMm    float64 `json:"headerTopGapMm"`

	ShowMiniCalendars  bool    `json:"showMiniCalendars"`
	WeekStartsOnMonday bool    `json:"weekStartsOnMonday"`
	MiniCalendarFontPt float64 `json:"miniCalendarFontPt"`

	RowHeightMm          float64 `json:"rowHeightMm"`
	DayColWidthMm        float64 `json:"dayColWidthMm"`
	DayColWeekdayWidthMm float64 `json:"dayColWeekdayWidthMm"`
	LineWeightPt         float64 `json:"lineWeightPt"`

	Columns []PlannerColumn `json:"columns"`

	FontFamily FontFamily `json:"fontFamily"`
	BodyFontPt float64    `json:"bodyFontPt"`

	WeekendTextStyle WeekendStyle `json:"weekendTextStyle"`
}

// StoredPlannerState is the last session snapshot kept by the local store.
type StoredPlannerState struct {
	Settings PlannerSettings `json:"settings"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
}

// Clone returns a deep copy that shares no memory with s.
func (s PlannerSettings) Clone() PlannerSettings {
	out := s
	if s.Columns != nil {
		out.Columns = make([]PlannerColumn, len(s.Columns))
		copy(out.Columns, s.Columns)
	}
	return out
}

// ColumnIndex returns the position of the column with the given id, or -1.
func (s PlannerSettings) ColumnIndex(id string) int {
	for i, c := range s.Columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// NewColumnID returns a fresh opaque column identifier.
func NewColumnID() string {
	return "col-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// EnsurePositive returns v when it is a finite number above zero, otherwise
// fallback.
func EnsurePositive(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}

// NormalizePaperPreset migrates the legacy a4 preset to letter and forces
// Letter page dimensions. Every other field is kept as is. Settings with any
// other preset are returned unchanged.
func NormalizePaperPreset(s PlannerSettings) PlannerSettings {
	if s.PaperPreset != PresetA4 {
		return s
	}
	out := s.Clone()
	out.PaperPreset = PresetLetter
	out.PageWidthMm = LetterWidthMm
	out.PageHeightMm = LetterHeightMm
	return out
}
