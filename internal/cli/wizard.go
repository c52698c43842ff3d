package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/cli/formatter"
	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// plannerHuhTheme returns a custom huh theme using the Gruvbox palette.
func plannerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// settingsEdit holds the editable copy of the settings bound to the form
// fields. Numbers are kept as text until apply.
type settingsEdit struct {
	numbers      map[string]*string
	columnLabels []string
	font         domain.FontFamily
	weekend      domain.WeekendStyle
	minis        bool
	mondayStart  bool
}

func newSettingsEdit(s domain.PlannerSettings) *settingsEdit {
	e := &settingsEdit{
		numbers:     make(map[string]*string),
		font:        s.FontFamily,
		weekend:     s.WeekendTextStyle,
		minis:       s.ShowMiniCalendars,
		mondayStart: s.WeekStartsOnMonday,
	}
	for _, f := range panel.NumberFields() {
		v := formatter.Num(f.Value(s))
		e.numbers[f.Name] = &v
	}
	for _, c := range s.Columns {
		e.columnLabels = append(e.columnLabels, c.Label)
	}
	return e
}

// form builds one group per number field group, then columns and style.
func (e *settingsEdit) form() *huh.Form {
	var groups []*huh.Group
	var current string
	var fields []huh.Field
	flush := func() {
		if len(fields) > 0 {
			groups = append(groups, huh.NewGroup(fields...).Title(current))
		}
		fields = nil
	}
	for _, f := range panel.NumberFields() {
		if f.Group != current {
			flush()
			current = f.Group
		}
		fields = append(fields, numberInput(f, e.numbers[f.Name]))
	}
	flush()

	if len(e.columnLabels) > 0 {
		cols := make([]huh.Field, len(e.columnLabels))
		for i := range e.columnLabels {
			cols[i] = columnLabelInput(i, &e.columnLabels[i])
		}
		groups = append(groups, huh.NewGroup(cols...).Title("Columns"))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewSelect[domain.FontFamily]().
			Title("Font").
			Options(
				huh.NewOption("Sans", domain.FontSans),
				huh.NewOption("Serif", domain.FontSerif),
				huh.NewOption("Mono", domain.FontMono),
			).
			Value(&e.font),
		huh.NewSelect[domain.WeekendStyle]().
			Title("Weekend days").
			Options(
				huh.NewOption("Red", domain.WeekendRed),
				huh.NewOption("Black", domain.WeekendBlack),
			).
			Value(&e.weekend),
		onOffConfirm("Mini calendars", &e.minis),
		onOffConfirm("Week starts Monday", &e.mondayStart),
	).Title("Style"))

	return huh.NewForm(groups...).WithTheme(plannerHuhTheme()).WithShowHelp(false)
}

// apply writes the edited values onto a copy of s through the panel
// operations, so the usual clamping applies.
func (e *settingsEdit) apply(s domain.PlannerSettings) (domain.PlannerSettings, error) {
	next := s.Clone()
	var err error
	for _, f := range panel.NumberFields() {
		raw := strings.TrimSpace(*e.numbers[f.Name])
		if raw == "" {
			continue
		}
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return s, fmt.Errorf("%s: invalid number %q", f.Label, raw)
		}
		if next, err = panel.SetNumber(next, f.Name, v); err != nil {
			return s, err
		}
	}
	for i, label := range e.columnLabels {
		if i >= len(next.Columns) {
			break
		}
		if next, err = panel.RenameColumn(next, next.Columns[i].ID, strings.TrimSpace(label)); err != nil {
			return s, err
		}
	}
	next = panel.SetFontFamily(next, e.font)
	next = panel.SetWeekendStyle(next, e.weekend)
	if next, err = panel.SetToggle(next, "showMiniCalendars", e.minis); err != nil {
		return s, err
	}
	if next, err = panel.SetToggle(next, "weekStartsOnMonday", e.mondayStart); err != nil {
		return s, err
	}
	return next, nil
}
