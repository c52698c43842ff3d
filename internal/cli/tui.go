package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/calendar"
	"github.com/alexanderramin/wallplanner/internal/cli/formatter"
	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/layout"
	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/alexanderramin/wallplanner/internal/printhost"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("tui needs an interactive terminal")
			}
			p := tea.NewProgram(newPlannerModel(cmd.Context(), app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// plannerModel is the interactive settings panel: a live month preview with
// single-key edits, each persisted to the store as soon as it is made.
type plannerModel struct {
	ctx   context.Context
	app   *App
	state domain.StoredPlannerState

	keys plannerKeyMap
	help help.Model
	vp   viewport.Model

	// edit and form are set while the full settings form is open.
	edit *settingsEdit
	form *huh.Form

	width, height int
	status        string
	quitting      bool
}

func newPlannerModel(ctx context.Context, app *App) *plannerModel {
	m := &plannerModel{
		ctx:   ctx,
		app:   app,
		state: app.loadSession(ctx),
		keys:  defaultPlannerKeyMap(),
		help:  help.New(),
		vp:    viewport.New(0, 0),
		width: app.termWidth(),
	}
	m.vp.KeyMap = outputViewportKeyMap()
	m.refresh()
	return m
}

// outputViewportKeyMap keeps letter keys free for planner shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func (m *plannerModel) Init() tea.Cmd {
	return nil
}

func (m *plannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *plannerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refresh()
		return m, nil

	case key.Matches(msg, k.PrevMonth):
		m.moveMonth(-1)
	case key.Matches(msg, k.NextMonth):
		m.moveMonth(1)
	case key.Matches(msg, k.Today):
		now := m.app.now()
		m.state.Year, m.state.Month = now.Year(), int(now.Month())
		m.status = ""

	case key.Matches(msg, k.Preset):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			return panel.SetPreset(nextPreset(s.PaperPreset))
		})
	case key.Matches(msg, k.WeekStart):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			return panel.SetToggle(s, "weekStartsOnMonday", !s.WeekStartsOnMonday)
		})
	case key.Matches(msg, k.Minis):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			return panel.SetToggle(s, "showMiniCalendars", !s.ShowMiniCalendars)
		})
	case key.Matches(msg, k.Weekend):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			w := domain.WeekendRed
			if s.WeekendTextStyle == domain.WeekendRed {
				w = domain.WeekendBlack
			}
			return panel.SetWeekendStyle(s, w), nil
		})
	case key.Matches(msg, k.Font):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			return panel.SetFontFamily(s, nextFont(s.FontFamily)), nil
		})
	case key.Matches(msg, k.RowTaller):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			return panel.StepNumber(s, "rowHeightMm", 1)
		})
	case key.Matches(msg, k.RowShorter):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			return panel.StepNumber(s, "rowHeightMm", -1)
		})
	case key.Matches(msg, k.AddColumn):
		m.apply(panel.AddColumn)
	case key.Matches(msg, k.RemoveColumn):
		m.apply(func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
			if len(s.Columns) == 0 {
				return s, panel.ErrLastColumn
			}
			return panel.RemoveColumn(s, s.Columns[len(s.Columns)-1].ID)
		})

	case key.Matches(msg, k.Export):
		link, err := printhost.Link(m.app.Config.Server.BaseURL, m.state.Year, m.state.Month, m.state.Settings, false)
		if err != nil {
			m.status = formatter.StyleRed.Render(err.Error())
		} else {
			m.status = link
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, k.Edit):
		m.edit = newSettingsEdit(m.state.Settings)
		m.form = m.edit.form()
		m.status = ""
		return m, m.form.Init()

	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	m.app.saveSession(m.ctx, m.state)
	m.refresh()
	return m, nil
}

func (m *plannerModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm(formatter.Dim("Edit cancelled."))
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		edit := m.edit
		m.closeForm("")
		m.apply(edit.apply)
		m.app.saveSession(m.ctx, m.state)
		m.refresh()
		return m, nil
	case huh.StateAborted:
		m.closeForm(formatter.Dim("Edit cancelled."))
		return m, nil
	}
	return m, cmd
}

func (m *plannerModel) closeForm(status string) {
	m.form = nil
	m.edit = nil
	m.status = status
	m.refresh()
}

// apply runs a panel operation on the settings. Rejected edits leave the
// settings unchanged and show the reason in the status line.
func (m *plannerModel) apply(fn func(domain.PlannerSettings) (domain.PlannerSettings, error)) {
	next, err := fn(m.state.Settings)
	if err != nil {
		m.status = formatter.StyleRed.Render(err.Error())
		return
	}
	m.state.Settings = next
	m.status = ""
}

func (m *plannerModel) moveMonth(delta int) {
	m.state.Year, m.state.Month = shiftMonth(m.state.Year, m.state.Month, delta)
	m.status = ""
}

// refresh re-renders the preview into the viewport.
func (m *plannerModel) refresh() {
	page := layout.Render(m.state.Year, m.state.Month, m.state.Settings, m.app.now())
	content := formatter.FormatMonthPreview(page, m.width)

	m.vp.Width = m.width
	m.vp.Height = m.contentHeight(content)
	m.vp.SetContent(content)
}

func (m *plannerModel) contentHeight(content string) int {
	if m.height <= 0 {
		return strings.Count(content, "\n") + 1
	}
	// header (2) + width line + status + help
	chrome := 4 + strings.Count(m.help.View(m.keys), "\n") + 1
	return max(m.height-chrome, 3)
}

func (m *plannerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.renderHeader() + "\n" + m.form.View()
	}

	sections := []string{
		m.renderHeader(),
		m.vp.View(),
		formatter.FormatWidthStatus(panel.WidthStatus(m.state.Settings)),
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m *plannerModel) renderHeader() string {
	s := m.state.Settings
	title := formatter.StylePurple.Render("wallplanner")
	info := fmt.Sprintf("%s %d · %s · %s", calendar.MonthName(m.state.Month), m.state.Year,
		s.PaperPreset.Label(), s.FontFamily)
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + "  " + formatter.Bold(info) + "\n" + sep
}

// nextPreset cycles through the presets offered for new templates.
func nextPreset(p domain.PaperPreset) domain.PaperPreset {
	presets := domain.SelectablePresets
	for i, q := range presets {
		if q == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}

func nextFont(f domain.FontFamily) domain.FontFamily {
	fonts := domain.FontFamilies
	for i, g := range fonts {
		if g == f {
			return fonts[(i+1)%len(fonts)]
		}
	}
	return fonts[0]
}
