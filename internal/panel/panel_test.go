package panel

import (
	"math"
	"testing"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetNumber_ClampsToBounds(t *testing.T) {
	tests := []struct {
		field string
		in    float64
		want  float64
	}{
		{"marginTopMm", -4, 0},
		{"marginLeftMm", 55, 40},
		{"marginRightMm", 12.5, 12.5},
		{"rowHeightMm", 2, 5},
		{"rowHeightMm", 30, 16},
		{"lineWeightPt", 0.1, 0.3},
		{"lineWeightPt", 2, 1.2},
		{"dayColWidthMm", 10, 16},
		{"dayColWeekdayWidthMm", 31, 30},
		{"headerYearSizePt", 9, 10},
		{"headerMonthSizePt", 50, 44},
		{"headerTopGapMm", 20, 14},
		{"bodyFontPt", 6, 7},
		{"miniCalendarFontPt", 13, 12},
		{"bodyFontPt", math.NaN(), 7},
		{"rowHeightMm", math.Inf(1), 5},
		{"marginBottomMm", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := SetNumber(testutil.NewTestSettings(), tt.field, tt.in)
			require.NoError(t, err)
			f, ok := LookupNumber(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, f.Value(got))
		})
	}
}

func TestSetNumber_DoesNotModifyInput(t *testing.T) {
	s := testutil.NewTestSettings()
	before := s.Clone()

	next, err := SetNumber(s, "rowHeightMm", 9)
	require.NoError(t, err)

	assert.Equal(t, before, s)
	assert.Equal(t, 9.0, next.RowHeightMm)
}

func TestSetNumber_UnknownField(t *testing.T) {
	s := testutil.NewTestSettings()
	got, err := SetNumber(s, "pageWidthMm", 100)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, s, got)
}

func TestStepNumber(t *testing.T) {
	s := testutil.NewTestSettings()
	s.RowHeightMm = 7.7

	up, err := StepNumber(s, "rowHeightMm", 1)
	require.NoError(t, err)
	assert.Equal(t, 7.8, up.RowHeightMm)

	down, err := StepNumber(s, "rowHeightMm", -100)
	require.NoError(t, err)
	assert.Equal(t, 5.0, down.RowHeightMm)
}

func TestSetToggle(t *testing.T) {
	s := testutil.NewTestSettings(testutil.WithMiniCalendars(true), testutil.WithMondayStart(true))

	s, err := SetToggle(s, "showMiniCalendars", false)
	require.NoError(t, err)
	assert.False(t, s.ShowMiniCalendars)

	s, err = SetToggle(s, "weekStartsOnMonday", false)
	require.NoError(t, err)
	assert.False(t, s.WeekStartsOnMonday)

	_, err = SetToggle(s, "bodyFontPt", true)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSetPresetAndReset(t *testing.T) {
	a3, err := SetPreset(domain.PresetA3)
	require.NoError(t, err)
	assert.Equal(t, 297.0, a3.PageWidthMm)
	assert.Len(t, a3.Columns, 5)

	edited, err := SetNumber(a3, "rowHeightMm", 6)
	require.NoError(t, err)
	reset, err := Reset(edited)
	require.NoError(t, err)
	assert.Equal(t, 10.5, reset.RowHeightMm)
	assert.Equal(t, domain.PresetA3, reset.PaperPreset)

	_, err = SetPreset("b5")
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
}

func TestSetFontAndWeekend(t *testing.T) {
	s := testutil.NewTestSettings()
	next := SetWeekendStyle(SetFontFamily(s, domain.FontMono), domain.WeekendBlack)

	assert.Equal(t, domain.FontMono, next.FontFamily)
	assert.Equal(t, domain.WeekendBlack, next.WeekendTextStyle)
	assert.Equal(t, domain.FontSans, s.FontFamily)
}

func TestClampYearMonth(t *testing.T) {
	assert.Equal(t, 1900, ClampYear(1200))
	assert.Equal(t, 2100, ClampYear(3000))
	assert.Equal(t, 2024, ClampYear(2024))
	assert.Equal(t, 1, ClampMonth(0))
	assert.Equal(t, 12, ClampMonth(13))
	assert.Equal(t, 6, ClampMonth(6))
}

func TestNumberFields_ReturnsCopy(t *testing.T) {
	fields := NumberFields()
	fields[0].Min = 99

	f, ok := LookupNumber(fields[0].Name)
	require.True(t, ok)
	assert.Equal(t, 0.0, f.Min)
}
