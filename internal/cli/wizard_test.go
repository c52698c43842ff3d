package cli

import (
	"testing"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsEdit_ApplyClampsAndKeepsUntouched(t *testing.T) {
	s := testutil.NewTestSettings()
	e := newSettingsEdit(s)

	assert.Equal(t, "7.7", *e.numbers["rowHeightMm"])
	require.Len(t, e.columnLabels, 4)

	*e.numbers["rowHeightMm"] = "30"
	*e.numbers["marginLeftMm"] = " 12.5 "
	*e.numbers["bodyFontPt"] = ""
	e.columnLabels[0] = "  Journal "
	e.font = domain.FontMono
	e.minis = false

	next, err := e.apply(s)
	require.NoError(t, err)

	assert.Equal(t, 16.0, next.RowHeightMm)
	assert.Equal(t, 12.5, next.MarginLeftMm)
	assert.Equal(t, s.BodyFontPt, next.BodyFontPt)
	assert.Equal(t, "Journal", next.Columns[0].Label)
	assert.Equal(t, "c1", next.Columns[0].ID)
	assert.Equal(t, domain.FontMono, next.FontFamily)
	assert.False(t, next.ShowMiniCalendars)
	assert.True(t, next.WeekStartsOnMonday)

	assert.Equal(t, "Notes", s.Columns[0].Label, "input settings are not modified")
}

func TestSettingsEdit_ApplyRejectsBadNumber(t *testing.T) {
	s := testutil.NewTestSettings()
	e := newSettingsEdit(s)
	*e.numbers["lineWeightPt"] = "thick"

	got, err := e.apply(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Line weight")
	assert.Equal(t, s, got)
}

func TestValidateOptionalNumber(t *testing.T) {
	for _, ok := range []string{"", "  ", "7", "7.25", "-1"} {
		assert.NoError(t, validateOptionalNumber(ok), ok)
	}
	for _, bad := range []string{"abc", "NaN", "Inf", "1,5"} {
		assert.Error(t, validateOptionalNumber(bad), bad)
	}
}

func TestValidateLabel(t *testing.T) {
	assert.NoError(t, validateLabel(""))
	assert.NoError(t, validateLabel("To-dos"))
	assert.Error(t, validateLabel("two\nlines"))
	assert.Error(t, validateLabel("this label is far too long to fit in a column header"))
}
