package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/layout"
	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/alexanderramin/wallplanner/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Notes", Truncate("Notes", 10))
	assert.Equal(t, "Work…", Truncate("Workout", 5))
	assert.Equal(t, "…", Truncate("Workout", 1))
	assert.Equal(t, "", Truncate("Workout", 0))
}

func TestRenderTable_AlignsAndTruncates(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "LABEL"},
		[][]string{{"c1", "Notes"}, {"c2", "A very long column label"}},
		8,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "ID  LABEL", lines[0])
	assert.Equal(t, "c1  Notes", lines[2])
	assert.Equal(t, "c2  A very …", lines[3])
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil, 0))
}

func TestFormatMonthPreview(t *testing.T) {
	s := testutil.NewTestSettings(testutil.WithMiniCalendars(true))
	p := layout.Render(2024, 2, s, time.Time{})

	out := stripANSI(FormatMonthPreview(p, 100))

	assert.Contains(t, out, "FEBRUARY")
	assert.Contains(t, out, "Jan 2024")
	assert.Contains(t, out, "Mar 2024")
	assert.Contains(t, out, "NOTES")
	assert.Contains(t, out, " 1  THU")
	assert.Contains(t, out, "29  THU")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100, line)
	}
}

func TestFormatMonthPreview_OneLinePerDay(t *testing.T) {
	s := testutil.NewTestSettings(testutil.WithMiniCalendars(false))
	out := stripANSI(FormatMonthPreview(layout.Render(2023, 4, s, time.Time{}), 0))

	days := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "│") && !strings.Contains(line, "DAY") {
			days++
		}
	}
	assert.Equal(t, 30, days)
}

func TestPreviewColumnWidths_Proportional(t *testing.T) {
	got := previewColumnWidths([]float64{50, 25, 25}, 103)
	assert.Equal(t, []int{50, 25, 25}, got)

	tiny := previewColumnWidths([]float64{100, 1}, 20)
	assert.Equal(t, minColWidth, tiny[1])
}

func TestFormatMiniMonth_SixWeeks(t *testing.T) {
	s := testutil.NewTestSettings(testutil.WithMiniCalendars(true))
	m := layout.Render(2024, 3, s, time.Time{}).Minis[0]

	lines := strings.Split(stripANSI(FormatMiniMonth(m)), "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, "Feb 2024", lines[0])
	assert.Equal(t, " M  T  W  T  F  S  S", lines[1])
}

func TestFormatSettings(t *testing.T) {
	out := stripANSI(FormatSettings(testutil.NewTestSettings()))

	assert.Contains(t, out, "PAPER")
	assert.Contains(t, out, "8.5 × 11 in (US Letter)")
	assert.Contains(t, out, "215.9mm × 279.4mm")
	assert.Contains(t, out, "rowHeightMm")
	assert.Contains(t, out, "Workout")
	assert.Contains(t, out, "You have ~9.9mm extra width.")
	assert.Contains(t, out, "WIDTH CHECK")
	assert.Contains(t, out, "╭")
}

func TestFormatWidthStatus_Tones(t *testing.T) {
	bad := stripANSI(FormatWidthStatus(panel.WidthStatus(testutil.NewTestSettings(testutil.WithPreset(domain.PresetA3)))))
	assert.Contains(t, bad, "OVERFLOW")
	assert.Contains(t, bad, "Over by ~12mm")
}

func TestFormatState(t *testing.T) {
	empty := stripANSI(FormatState(nil, "memory"))
	assert.Contains(t, empty, "none")

	st := &domain.StoredPlannerState{Settings: testutil.NewTestSettings(), Year: 2024, Month: 9}
	out := stripANSI(FormatState(st, "sqlite"))
	assert.Contains(t, out, "September 2024")
	assert.Contains(t, out, "sqlite")
	assert.NotContains(t, out, "Problems")

	st.Settings.Columns = nil
	assert.Contains(t, stripANSI(FormatState(st, "sqlite")), "Problems")
}

func TestFormatYearOverview(t *testing.T) {
	out := stripANSI(FormatYearOverview(layout.RenderYear(2024, testutil.NewTestSettings(), time.Time{})))
	assert.Contains(t, out, "February")
	assert.Contains(t, out, "29")
	assert.Equal(t, 14, strings.Count(out, "\n"))
}
