package cli

import "github.com/charmbracelet/bubbles/key"

// plannerKeyMap lists the TUI bindings. It implements help.KeyMap.
type plannerKeyMap struct {
	PrevMonth    key.Binding
	NextMonth    key.Binding
	Today        key.Binding
	Preset       key.Binding
	WeekStart    key.Binding
	Minis        key.Binding
	Weekend      key.Binding
	Font         key.Binding
	RowTaller    key.Binding
	RowShorter   key.Binding
	AddColumn    key.Binding
	RemoveColumn key.Binding
	Edit         key.Binding
	Export       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultPlannerKeyMap() plannerKeyMap {
	return plannerKeyMap{
		PrevMonth:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		NextMonth:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Preset:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paper preset")),
		WeekStart:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "monday start")),
		Minis:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "mini calendars")),
		Weekend:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weekend color")),
		Font:         key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "font")),
		RowTaller:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "taller rows")),
		RowShorter:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shorter rows")),
		AddColumn:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add column")),
		RemoveColumn: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove last column")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit all")),
		Export:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "print link")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k plannerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Preset, k.Edit, k.Help, k.Quit}
}

func (k plannerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevMonth, k.NextMonth, k.Today, k.Export},
		{k.Preset, k.WeekStart, k.Minis, k.Weekend, k.Font},
		{k.RowTaller, k.RowShorter, k.AddColumn, k.RemoveColumn},
		{k.Edit, k.Help, k.Quit},
	}
}
