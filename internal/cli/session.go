package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/spf13/pflag"
)

// loadSession returns the stored session, or a fresh one built from the
// configured default preset and the current month. Stored settings that fail
// validation are replaced by the default template.
func (a *App) loadSession(ctx context.Context) domain.StoredPlannerState {
	now := a.now()
	fresh := domain.StoredPlannerState{
		Settings: a.defaultSettings(),
		Year:     now.Year(),
		Month:    int(now.Month()),
	}

	st := a.State.Read(ctx)
	if st == nil {
		return fresh
	}

	out := *st
	out.Year = panel.ClampYear(out.Year)
	out.Month = panel.ClampMonth(out.Month)
	if errs := domain.ValidateSettings(&out.Settings); len(errs) > 0 {
		a.logger().Warn("stored settings are invalid, using defaults")
		out.Settings = fresh.Settings
	}
	out.Settings = domain.NormalizePaperPreset(out.Settings)
	return out
}

func (a *App) defaultSettings() domain.PlannerSettings {
	s, err := domain.WithPaperPreset(a.Config.DefaultPreset)
	if err != nil {
		return domain.DefaultSettings()
	}
	return domain.NormalizePaperPreset(s)
}

func (a *App) saveSession(ctx context.Context, st domain.StoredPlannerState) {
	a.State.Write(ctx, st)
}

// updateSettings applies fn to the stored settings and persists the result.
func (a *App) updateSettings(ctx context.Context, fn func(domain.PlannerSettings) (domain.PlannerSettings, error)) (domain.PlannerSettings, error) {
	st := a.loadSession(ctx)
	next, err := fn(st.Settings)
	if err != nil {
		return st.Settings, err
	}
	st.Settings = next
	a.saveSession(ctx, st)
	return next, nil
}

// resolveColumnID accepts a column id, a 1-based position, or a unique id
// prefix.
func resolveColumnID(s domain.PlannerSettings, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("column is required")
	}

	// 1. Exact id
	if s.ColumnIndex(input) >= 0 {
		return input, nil
	}

	// 2. Position
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(s.Columns) {
			return "", fmt.Errorf("column position %d out of range (1-%d)", n, len(s.Columns))
		}
		return s.Columns[n-1].ID, nil
	}

	// 3. Id prefix
	var matches []string
	for _, c := range s.Columns {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", panel.ErrUnknownColumn, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("column id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

// addMonthFlags registers --year and --month. Zero means "use the session".
func addMonthFlags(fs *pflag.FlagSet, year, month *int, what string) {
	fs.IntVar(year, "year", 0, fmt.Sprintf("Year to %s (default: session year)", what))
	fs.IntVar(month, "month", 0, fmt.Sprintf("Month to %s, 1-12 (default: session month)", what))
}

// monthFlags resolves --year/--month against the session. Zero means unset.
func monthFlags(st domain.StoredPlannerState, year, month int) (int, int, error) {
	if year == 0 {
		year = st.Year
	}
	if month == 0 {
		month = st.Month
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12, got %d", month)
	}
	if year != panel.ClampYear(year) {
		return 0, 0, fmt.Errorf("year must be 1900-2100, got %d", year)
	}
	return year, month, nil
}
