// Package layout turns (year, month, settings) into a page model: the header,
// the column header row, one row per day, and the optional mini calendars.
// The model carries every measurement the HTML and terminal renderers need,
// so neither of them reads settings directly.
package layout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/wallplanner/internal/calendar"
	"github.com/alexanderramin/wallplanner/internal/domain"
)

const (
	ColorText    = "#111"
	ColorWeekend = "#b01818"
)

var fontStacks = map[domain.FontFamily]string{
	domain.FontSans:  "ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial",
	domain.FontSerif: `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
	domain.FontMono:  `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`,
}

// Page is one printed month.
type Page struct {
	Year  int
	Month int

	WidthMm  float64
	HeightMm float64
	Margins  Margins

	FontStack  string
	BodyFontPt float64

	Header Header
	GapMm  float64

	Grid Grid

	// Minis holds the previous and next month when mini calendars are on.
	Minis []MiniMonth
}

type Margins struct {
	TopMm, RightMm, BottomMm, LeftMm float64
}

type Header struct {
	Year        string
	Month       string
	MonthName   string
	YearSizePt  float64
	MonthSizePt float64
}

// Grid is the day table. ColumnWidthsMm[0] is the day column.
type Grid struct {
	ColumnWidthsMm    []float64
	LineWeightPt      float64
	RowHeightMm       float64
	HeaderRowHeightMm float64
	DayNumWidthMm     float64
	HeaderCellFontPt  float64
	WeekdayFontPt     float64

	HeaderRow HeaderRow
	Rows      []DayRow
}

type HeaderRow struct {
	DayLabel     string
	WeekdayLabel string
	Columns      []ColumnHeader
}

type ColumnHeader struct {
	ID    string
	Label string
}

// DayRow is one calendar day. Cells is the number of blank writable cells.
type DayRow struct {
	Day          int
	Weekday      int
	WeekdayLabel string
	Weekend      bool
	Color        string
	Cells        int
}

type MiniMonth struct {
	Year       int
	Month      int
	Title      string
	FontPt     float64
	Headers    []string
	Weeks      [][]calendar.Cell
	WeekendRed bool
}

// CellCount returns the number of cells in a day row: the day cell plus
// one per writable column.
func (r DayRow) CellCount() int {
	return 1 + r.Cells
}

// Render builds the page for one month. It is a pure function of its
// arguments; today only feeds the mini calendars' IsToday flags.
func Render(year, month int, s domain.PlannerSettings, today time.Time) Page {
	fb := domain.DefaultSettings()

	body := domain.EnsurePositive(s.BodyFontPt, fb.BodyFontPt)
	rowHeight := domain.EnsurePositive(s.RowHeightMm, fb.RowHeightMm)

	font, ok := fontStacks[s.FontFamily]
	if !ok {
		font = fontStacks[domain.FontSans]
	}

	widths := make([]float64, 0, len(s.Columns)+1)
	widths = append(widths, domain.EnsurePositive(s.DayColWidthMm, fb.DayColWidthMm))
	headers := make([]ColumnHeader, 0, len(s.Columns))
	for _, c := range s.Columns {
		widths = append(widths, domain.EnsurePositive(c.WidthMm, 30))
		headers = append(headers, ColumnHeader{ID: c.ID, Label: c.Label})
	}

	page := Page{
		Year:     year,
		Month:    month,
		WidthMm:  domain.EnsurePositive(s.PageWidthMm, fb.PageWidthMm),
		HeightMm: domain.EnsurePositive(s.PageHeightMm, fb.PageHeightMm),
		Margins: Margins{
			TopMm:    nonNegative(s.MarginTopMm),
			RightMm:  nonNegative(s.MarginRightMm),
			BottomMm: nonNegative(s.MarginBottomMm),
			LeftMm:   nonNegative(s.MarginLeftMm),
		},
		FontStack:  font,
		BodyFontPt: body,
		Header: Header{
			Year:        fmt.Sprintf("%d", year),
			Month:       fmt.Sprintf("%02d", month),
			MonthName:   calendar.MonthName(month),
			YearSizePt:  domain.EnsurePositive(s.HeaderYearSizePt, fb.HeaderYearSizePt),
			MonthSizePt: domain.EnsurePositive(s.HeaderMonthSizePt, fb.HeaderMonthSizePt),
		},
		GapMm: nonNegative(s.HeaderTopGapMm),
		Grid: Grid{
			ColumnWidthsMm:    widths,
			LineWeightPt:      domain.EnsurePositive(s.LineWeightPt, fb.LineWeightPt),
			RowHeightMm:       rowHeight,
			HeaderRowHeightMm: math.Max(8, rowHeight*0.95),
			DayNumWidthMm:     domain.EnsurePositive(s.DayColWeekdayWidthMm, fb.DayColWeekdayWidthMm),
			HeaderCellFontPt:  math.Max(body-0.4, 7.2),
			WeekdayFontPt:     math.Max(body-1, 6.8),
			HeaderRow: HeaderRow{
				DayLabel:     "#",
				WeekdayLabel: "Day",
				Columns:      headers,
			},
		},
	}

	total := calendar.DaysInMonth(year, month)
	page.Grid.Rows = make([]DayRow, 0, total)
	for d := 1; d <= total; d++ {
		wd := calendar.WeekdayIndex(year, month, d)
		weekend := calendar.IsWeekendDay(wd)
		color := ColorText
		if weekend && s.WeekendTextStyle == domain.WeekendRed {
			color = ColorWeekend
		}
		page.Grid.Rows = append(page.Grid.Rows, DayRow{
			Day:          d,
			Weekday:      wd,
			WeekdayLabel: strings.ToUpper(calendar.WeekdayShort(wd)),
			Weekend:      weekend,
			Color:        color,
			Cells:        len(s.Columns),
		})
	}

	if s.ShowMiniCalendars {
		miniFont := domain.EnsurePositive(s.MiniCalendarFontPt, fb.MiniCalendarFontPt)
		py, pm := calendar.PrevMonth(year, month)
		ny, nm := calendar.NextMonth(year, month)
		page.Minis = []MiniMonth{
			miniMonth(py, pm, s, miniFont, today),
			miniMonth(ny, nm, s, miniFont, today),
		}
	}

	return page
}

// RenderYear renders all twelve months of year with identical settings.
func RenderYear(year int, s domain.PlannerSettings, today time.Time) []Page {
	pages := make([]Page, 0, 12)
	for m := 1; m <= 12; m++ {
		pages = append(pages, Render(year, m, s, today))
	}
	return pages
}

func miniMonth(year, month int, s domain.PlannerSettings, fontPt float64, today time.Time) MiniMonth {
	return MiniMonth{
		Year:       year,
		Month:      month,
		Title:      fmt.Sprintf("%s %d", calendar.MonthShort(month), year),
		FontPt:     fontPt,
		Headers:    calendar.MiniWeekdayHeaders(s.WeekStartsOnMonday),
		Weeks:      calendar.BuildMiniMatrix(year, month, s.WeekStartsOnMonday, today),
		WeekendRed: s.WeekendTextStyle == domain.WeekendRed,
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
