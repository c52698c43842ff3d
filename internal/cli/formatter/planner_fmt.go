package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/calendar"
	"github.com/alexanderramin/wallplanner/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultPreviewWidth is used when the terminal width is unknown.
	DefaultPreviewWidth = 100

	dayCellWidth = 8 // "29  THU "
	minColWidth  = 4
	cellSep      = "│"
)

// FormatMonthPreview renders a page model as terminal text: header, mini
// calendars, then one line per day. Column widths keep the proportions of
// the printed millimetre widths, scaled to width cells.
func FormatMonthPreview(p layout.Page, width int) string {
	if width <= 0 {
		width = DefaultPreviewWidth
	}

	var b strings.Builder
	b.WriteString(formatPreviewHeader(p))
	b.WriteString("\n\n")

	widths := previewColumnWidths(p.Grid.ColumnWidthsMm[1:], width-dayCellWidth-1)
	b.WriteString(formatHeaderRow(p.Grid.HeaderRow, widths))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(strings.Repeat("─", lineWidth(widths))))
	b.WriteString("\n")
	for _, r := range p.Grid.Rows {
		b.WriteString(formatDayRow(r, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func formatPreviewHeader(p layout.Page) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		StyleDim.Render(p.Header.Year),
		StyleHeader.Render(strings.ToUpper(p.Header.MonthName))+" "+StyleDim.Render(p.Header.Month),
	)
	if len(p.Minis) == 0 {
		return left
	}

	blocks := []string{left}
	for _, m := range p.Minis {
		blocks = append(blocks, "    ", FormatMiniMonth(m))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// FormatMiniMonth renders a 6x7 mini calendar.
func FormatMiniMonth(m layout.MiniMonth) string {
	lines := make([]string, 0, 2+len(m.Weeks))
	lines = append(lines, StyleBold.Render(m.Title))

	heads := make([]string, len(m.Headers))
	for i, h := range m.Headers {
		heads[i] = fmt.Sprintf("%2s", h)
	}
	lines = append(lines, StyleDim.Render(strings.Join(heads, " ")))

	for _, week := range m.Weeks {
		cells := make([]string, len(week))
		for i, c := range week {
			if c.IsBlank() {
				cells[i] = "  "
				continue
			}
			text := fmt.Sprintf("%2d", c.Day)
			switch {
			case c.IsToday:
				cells[i] = lipgloss.NewStyle().Reverse(true).Render(text)
			case c.IsWeekend && m.WeekendRed:
				cells[i] = StyleRed.Render(text)
			default:
				cells[i] = text
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func formatHeaderRow(h layout.HeaderRow, widths []int) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(PadRight(h.DayLabel+"   "+strings.ToUpper(h.WeekdayLabel), dayCellWidth)))
	for i, c := range h.Columns {
		b.WriteString(StyleDim.Render(cellSep))
		b.WriteString(StyleHeader.Render(PadRight(Truncate(strings.ToUpper(c.Label), widths[i]), widths[i])))
	}
	return b.String()
}

func formatDayRow(r layout.DayRow, widths []int) string {
	day := PadRight(fmt.Sprintf("%2d  %s", r.Day, r.WeekdayLabel), dayCellWidth)
	if r.Color == layout.ColorWeekend {
		day = StyleRed.Render(day)
	} else {
		day = StyleBold.Render(day)
	}

	var b strings.Builder
	b.WriteString(day)
	for i := 0; i < r.Cells && i < len(widths); i++ {
		b.WriteString(StyleDim.Render(cellSep))
		b.WriteString(strings.Repeat(" ", widths[i]))
	}
	return b.String()
}

// previewColumnWidths scales millimetre widths to fit avail cells, keeping
// each column at least minColWidth wide.
func previewColumnWidths(mm []float64, avail int) []int {
	out := make([]int, len(mm))
	if len(mm) == 0 {
		return out
	}
	avail -= len(mm) // separators
	var total float64
	for _, w := range mm {
		total += w
	}
	for i, w := range mm {
		cells := minColWidth
		if total > 0 {
			cells = int(math.Floor(w / total * float64(avail)))
		}
		out[i] = max(cells, minColWidth)
	}
	return out
}

func lineWidth(widths []int) int {
	n := dayCellWidth
	for _, w := range widths {
		n += w + 1
	}
	return n
}

// FormatYearOverview lists the months of a year with their day counts, for
// year-mode exports.
func FormatYearOverview(pages []layout.Page) string {
	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		weekend := 0
		for _, r := range p.Grid.Rows {
			if r.Weekend {
				weekend++
			}
		}
		rows = append(rows, []string{
			calendar.MonthName(p.Month),
			strconv.Itoa(len(p.Grid.Rows)),
			strconv.Itoa(weekend),
		})
	}
	return RenderTable([]string{"MONTH", "DAYS", "WEEKEND DAYS"}, rows, 0)
}
