package panel

import (
	"fmt"

	"github.com/alexanderramin/wallplanner/internal/domain"
)

const (
	MaxColumns     = 8
	NewColumnLabel = "New"
	NewColumnWidth = 30.0
	MinColumnWidth = 15.0
	MaxColumnWidth = 120.0
)

// AddColumn appends a "New" column with a fresh id.
func AddColumn(s domain.PlannerSettings) (domain.PlannerSettings, error) {
	if len(s.Columns) >= MaxColumns {
		return s, ErrColumnLimit
	}
	next := s.Clone()
	next.Columns = append(next.Columns, domain.PlannerColumn{
		ID:      domain.NewColumnID(),
		Label:   NewColumnLabel,
		WidthMm: NewColumnWidth,
	})
	return next, nil
}

// RemoveColumn drops the column with the given id. At least one column
// always remains.
func RemoveColumn(s domain.PlannerSettings, id string) (domain.PlannerSettings, error) {
	idx := s.ColumnIndex(id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %q", ErrUnknownColumn, id)
	}
	if len(s.Columns) <= 1 {
		return s, ErrLastColumn
	}
	next := s.Clone()
	next.Columns = append(next.Columns[:idx], next.Columns[idx+1:]...)
	return next, nil
}

func RenameColumn(s domain.PlannerSettings, id, label string) (domain.PlannerSettings, error) {
	return updateColumn(s, id, func(c *domain.PlannerColumn) { c.Label = label })
}

// ResizeColumn sets a column width, clamped to 15..120mm.
func ResizeColumn(s domain.PlannerSettings, id string, mm float64) (domain.PlannerSettings, error) {
	return updateColumn(s, id, func(c *domain.PlannerColumn) {
		c.WidthMm = clamp(mm, MinColumnWidth, MaxColumnWidth)
	})
}

func updateColumn(s domain.PlannerSettings, id string, fn func(*domain.PlannerColumn)) (domain.PlannerSettings, error) {
	idx := s.ColumnIndex(id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %q", ErrUnknownColumn, id)
	}
	next := s.Clone()
	fn(&next.Columns[idx])
	return next, nil
}
