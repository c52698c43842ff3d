package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/panel"
)

const labelWidth = 22

func kv(label, value string) string {
	return "  " + StyleDim.Render(PadRight(label, labelWidth)) + value + "\n"
}

// FormatSettings renders every settings field grouped the way the settings
// panel groups them, followed by the columns and the boxed width check.
func FormatSettings(s domain.PlannerSettings) string {
	var b strings.Builder

	b.WriteString(Header("Paper"))
	b.WriteString("\n")
	b.WriteString(kv("Preset", StyleBold.Render(string(s.PaperPreset))+" "+Dim(s.PaperPreset.Label())))
	b.WriteString(kv("Page", fmt.Sprintf("%s × %s", Mm(s.PageWidthMm), Mm(s.PageHeightMm))))
	b.WriteString(kv("Font", fmt.Sprintf("%s, body %s", s.FontFamily, Pt(s.BodyFontPt))))
	b.WriteString(kv("Weekend text", formatWeekend(s.WeekendTextStyle)))
	b.WriteString(kv("Mini calendars", fmt.Sprintf("%s (%s)", OnOff(s.ShowMiniCalendars), Pt(s.MiniCalendarFontPt))))
	b.WriteString(kv("Week starts Monday", OnOff(s.WeekStartsOnMonday)))
	b.WriteString("\n")

	group := ""
	for _, f := range panel.NumberFields() {
		if f.Group != group {
			group = f.Group
			b.WriteString(Header(group))
			b.WriteString("\n")
		}
		b.WriteString(kv(f.Label, Num(f.Value(s))+"  "+Dim(f.Name)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Columns"))
	b.WriteString("\n")
	b.WriteString(FormatColumns(s.Columns))
	b.WriteString("\n")
	b.WriteString(RenderBox("Width check", strings.TrimRight(FormatWidthStatus(panel.WidthStatus(s)), "\n")))
	b.WriteString("\n")
	return b.String()
}

// FormatColumns renders the column list as a table.
func FormatColumns(cols []domain.PlannerColumn) string {
	rows := make([][]string, len(cols))
	for i, c := range cols {
		rows[i] = []string{strconv.Itoa(i + 1), Dim(c.ID), c.Label, Mm(c.WidthMm)}
	}
	return RenderTable([]string{"#", "ID", "LABEL", "WIDTH"}, rows, 32)
}

// FormatWidthStatus renders the usable width check.
func FormatWidthStatus(w panel.Width) string {
	var b strings.Builder
	b.WriteString(kv("Usable width", Mm(w.UsableMm)))
	b.WriteString(kv("Total columns", Mm(w.TotalMm)))
	b.WriteString("  " + ToneIndicator(w.Tone) + "  " + ToneStyle(w.Tone).Render(w.Text) + "\n")
	return b.String()
}

func formatWeekend(w domain.WeekendStyle) string {
	if w == domain.WeekendRed {
		return StyleRed.Render(string(w))
	}
	return StyleBold.Render(string(w))
}
