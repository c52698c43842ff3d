// Package calendar holds the date arithmetic used by the planner: month
// lengths, weekday lookup, English names, and the 6×7 mini calendar grid.
//
// Months are 1-based throughout. Dates are evaluated in time.Local.
package calendar

import "time"

// Cell is one slot of a mini calendar. Day is 0 for padding cells.
type Cell struct {
	Day            int  `json:"day,omitempty"`
	IsCurrentMonth bool `json:"isCurrentMonth"`
	IsToday        bool `json:"isToday"`
	IsWeekend      bool `json:"isWeekend"`
}

// IsBlank reports whether the cell is padding rather than a day of the month.
func (c Cell) IsBlank() bool {
	return c.Day == 0
}

// MiniRows and MiniCols are the fixed dimensions of every mini calendar.
const (
	MiniRows = 6
	MiniCols = 7
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one, so leap years
// come out of time.Date for free.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.Local).Day()
}

// WeekdayIndex returns 0 (Sunday) through 6 (Saturday).
func WeekdayIndex(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).Weekday())
}

// MonthName returns the English month name, or "" when month is not 1-12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthShort returns the three-letter month abbreviation.
func MonthShort(month int) string {
	name := MonthName(month)
	if len(name) < 3 {
		return name
	}
	return name[:3]
}

// WeekdayShort returns the three-letter weekday abbreviation for index 0-6.
func WeekdayShort(i int) string {
	if i < 0 || i >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[i]
}

// IsWeekendDay applies the main-grid weekend rule: Sunday and Saturday,
// whatever day the week starts on.
func IsWeekendDay(weekday int) bool {
	return weekday == 0 || weekday == 6
}

// PrevMonth returns the calendar month before (year, month).
func PrevMonth(year, month int) (int, int) {
	return rollover(year, month-1)
}

// NextMonth returns the calendar month after (year, month).
func NextMonth(year, month int) (int, int) {
	return rollover(year, month+1)
}

func rollover(year, month int) (int, int) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return t.Year(), int(t.Month())
}

// MiniWeekdayHeaders returns the single-letter column headers of a mini
// calendar for the configured week start.
func MiniWeekdayHeaders(weekStartsOnMonday bool) []string {
	if weekStartsOnMonday {
		return []string{"M", "T", "W", "T", "F", "S", "S"}
	}
	return []string{"S", "M", "T", "W", "T", "F", "S"}
}

// column maps a Sunday-based weekday onto the grid column for the week start.
func column(weekday int, weekStartsOnMonday bool) int {
	if !weekStartsOnMonday {
		return weekday
	}
	return (weekday + 6) % 7
}

func weekendColumn(col int, weekStartsOnMonday bool) bool {
	if weekStartsOnMonday {
		return col == 5 || col == 6
	}
	return col == 0 || col == 6
}

// BuildMiniMatrix lays out a month as exactly six weeks of seven cells.
// Leading and trailing slots are blank, and short months get extra blank
// weeks so every mini calendar has the same height. today is the reference
// date for IsToday; pass the zero time to flag nothing.
func BuildMiniMatrix(year, month int, weekStartsOnMonday bool, today time.Time) [][]Cell {
	total := DaysInMonth(year, month)
	ty, tm, td := today.Date()
	hasToday := !today.IsZero() && ty == year && int(tm) == month

	weeks := make([][]Cell, 0, MiniRows)
	week := make([]Cell, 0, MiniCols)

	first := column(WeekdayIndex(year, month, 1), weekStartsOnMonday)
	for i := 0; i < first; i++ {
		week = append(week, Cell{})
	}

	for d := 1; d <= total; d++ {
		col := column(WeekdayIndex(year, month, d), weekStartsOnMonday)
		week = append(week, Cell{
			Day:            d,
			IsCurrentMonth: true,
			IsToday:        hasToday && td == d,
			IsWeekend:      weekendColumn(col, weekStartsOnMonday),
		})
		if len(week) == MiniCols {
			weeks = append(weeks, week)
			week = make([]Cell, 0, MiniCols)
		}
	}

	if len(week) > 0 {
		for len(week) < MiniCols {
			week = append(week, Cell{})
		}
		weeks = append(weeks, week)
	}

	for len(weeks) < MiniRows {
		weeks = append(weeks, make([]Cell, MiniCols))
	}

	return weeks
}
