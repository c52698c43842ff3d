package domain

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPaperPreset_ReturnsIndependentCopies(t *testing.T) {
	a, err := WithPaperPreset(PresetLetter)
	require.NoError(t, err)
	b, err := WithPaperPreset(PresetLetter)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	a.Columns[0].Label = "Changed"
	a.Columns = append(a.Columns, PlannerColumn{ID: "extra", Label: "Extra", WidthMm: 10})
	a.MarginTopMm = 99

	assert.Equal(t, "Notes", b.Columns[0].Label)
	assert.Len(t, b.Columns, 4)

	c, err := WithPaperPreset(PresetLetter)
	require.NoError(t, err)
	assert.Equal(t, b, c, "catalog must not be mutated through a returned copy")
}

func TestWithPaperPreset_Catalog(t *testing.T) {
	a3, err := WithPaperPreset(PresetA3)
	require.NoError(t, err)
	assert.Equal(t, PresetA3, a3.PaperPreset)
	assert.Equal(t, 297.0, a3.PageWidthMm)
	assert.Equal(t, 420.0, a3.PageHeightMm)
	assert.Len(t, a3.Columns, 5)

	letter, err := WithPaperPreset(PresetLetter)
	require.NoError(t, err)
	assert.Equal(t, LetterWidthMm, letter.PageWidthMm)
	assert.Equal(t, LetterHeightMm, letter.PageHeightMm)

	a4, err := WithPaperPreset(PresetA4)
	require.NoError(t, err)
	assert.Equal(t, PresetA4, a4.PaperPreset)
	a4.PaperPreset = PresetLetter
	assert.Equal(t, letter, a4, "a4 is a structural copy of letter")
}

func TestWithPaperPreset_Unknown(t *testing.T) {
	_, err := WithPaperPreset("tabloid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestNormalizePaperPreset_MigratesA4(t *testing.T) {
	s := DefaultSettings()
	s.PaperPreset = PresetA4
	s.PageWidthMm = 210
	s.PageHeightMm = 297
	s.MarginLeftMm = 3
	s.Columns = []PlannerColumn{{ID: "x", Label: "Only", WidthMm: 100}}

	got := NormalizePaperPreset(s)

	assert.Equal(t, PresetLetter, got.PaperPreset)
	assert.Equal(t, LetterWidthMm, got.PageWidthMm)
	assert.Equal(t, LetterHeightMm, got.PageHeightMm)
	assert.Equal(t, 3.0, got.MarginLeftMm)
	assert.Equal(t, s.Columns, got.Columns)
	assert.Equal(t, PresetA4, s.PaperPreset, "input is not modified")
}

func TestNormalizePaperPreset_NoOpForOtherPresets(t *testing.T) {
	for _, p := range []PaperPreset{PresetA3, PresetLetter} {
		s, err := WithPaperPreset(p)
		require.NoError(t, err)
		s.PageWidthMm = 123
		assert.Equal(t, s, NormalizePaperPreset(s))
	}
}

func TestEnsurePositive(t *testing.T) {
	assert.Equal(t, 5.5, EnsurePositive(5.5, 1))
	assert.Equal(t, 1.0, EnsurePositive(0, 1))
	assert.Equal(t, 1.0, EnsurePositive(-3, 1))
	assert.Equal(t, 1.0, EnsurePositive(math.NaN(), 1))
	assert.Equal(t, 1.0, EnsurePositive(math.Inf(1), 1))
}

func TestClone_IsDeep(t *testing.T) {
	s := DefaultSettings()
	c := s.Clone()
	c.Columns[1].WidthMm = 1
	assert.NotEqual(t, s.Columns[1].WidthMm, c.Columns[1].WidthMm)
}

func TestNewColumnID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewColumnID()
		assert.True(t, strings.HasPrefix(id, "col-"))
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestValidateSettings_DefaultsAreValid(t *testing.T) {
	for _, p := range []PaperPreset{PresetA3, PresetLetter, PresetA4} {
		s, err := WithPaperPreset(p)
		require.NoError(t, err)
		assert.Empty(t, ValidateSettings(&s), "preset %s", p)
	}
}

func TestValidateSettings_RejectsStructuralProblems(t *testing.T) {
	s := DefaultSettings()
	s.Columns = nil
	s.RowHeightMm = 0
	s.FontFamily = "comic"
	s.MarginTopMm = -1

	errs := ValidateSettings(&s)
	require.Len(t, errs, 4)

	var joined []string
	for _, e := range errs {
		joined = append(joined, e.Error())
	}
	text := strings.Join(joined, "\n")
	assert.Contains(t, text, "at least one column")
	assert.Contains(t, text, "rowHeightMm")
	assert.Contains(t, text, "font family")
	assert.Contains(t, text, "marginTopMm")
}

func TestValidateSettings_DuplicateColumnIDs(t *testing.T) {
	s := DefaultSettings()
	s.Columns[1].ID = s.Columns[0].ID
	errs := ValidateSettings(&s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestValidateSettings_Nil(t *testing.T) {
	assert.Len(t, ValidateSettings(nil), 1)
}

func TestPaperPresetLabel(t *testing.T) {
	assert.Equal(t, "A3 (297×420mm)", PresetA3.Label())
	assert.Equal(t, "8.5 × 11 in (US Letter)", PresetLetter.Label())
	assert.Equal(t, "custom", PaperPreset("custom").Label())
}

func TestParseHelpers(t *testing.T) {
	p, err := ParsePaperPreset(" A3 ")
	require.NoError(t, err)
	assert.Equal(t, PresetA3, p)

	_, err = ParsePaperPreset("b5")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	f, err := ParseFontFamily("Serif")
	require.NoError(t, err)
	assert.Equal(t, FontSerif, f)

	w, err := ParseWeekendStyle("black")
	require.NoError(t, err)
	assert.Equal(t, WeekendBlack, w)

	_, err = ParseWeekendStyle("blue")
	assert.Error(t, err)
}
