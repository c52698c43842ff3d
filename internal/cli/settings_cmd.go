package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/cli/formatter"
	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "View and edit the planner template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsPresetCmd(app),
		newSettingsResetCmd(app),
		newSettingsSetCmd(app),
		newSettingsToggleCmd(app),
		newSettingsFontCmd(app),
		newSettingsWeekendCmd(app),
		newSettingsEditCmd(app),
		newColumnCmd(app),
	)

	return cmd
}

func showSettings(cmd *cobra.Command, app *App) error {
	st := app.loadSession(cmd.Context())
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(st.Settings))
	return nil
}

// applySettings persists fn's result and prints the updated settings.
func applySettings(cmd *cobra.Command, app *App, fn func(domain.PlannerSettings) (domain.PlannerSettings, error)) error {
	s, err := app.updateSettings(cmd.Context(), fn)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
	return nil
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all settings and the width check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}
}

func newSettingsPresetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "preset <a3|letter>",
		Short:     "Replace all settings with a paper preset template",
		Args:      cobra.ExactArgs(1),
		ValidArgs: presetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseSelectablePreset(args[0])
			if err != nil {
				return err
			}
			return applySettings(cmd, app, func(domain.PlannerSettings) (domain.PlannerSettings, error) {
				return panel.SetPreset(p)
			})
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset to the template of the current preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySettings(cmd, app, panel.Reset)
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a numeric field (clamped to its range)",
		Long:  "Set a numeric field. Values outside the field's range are clamped.\n\nFields:\n" + numberFieldHelp(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[1])
			}
			return applySettings(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
				return panel.SetNumber(s, args[0], v)
			})
		},
	}
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, f := range panel.NumberFields() {
			names = append(names, f.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
	return positionalNumbers(cmd)
}

// positionalNumbers stops flag parsing at the first positional argument so
// a negative value such as -3 reaches RunE instead of failing as a flag.
func positionalNumbers(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newSettingsToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <field> <on|off>",
		Short: "Turn showMiniCalendars or weekStartsOnMonday on or off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseOnOff(args[1])
			if err != nil {
				return err
			}
			return applySettings(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
				return panel.SetToggle(s, args[0], on)
			})
		},
	}
}

func newSettingsFontCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "font <sans|serif|mono>",
		Short:     "Set the font family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.FontSans), string(domain.FontSerif), string(domain.FontMono)},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseFontFamily(args[0])
			if err != nil {
				return err
			}
			return applySettings(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
				return panel.SetFontFamily(s, f), nil
			})
		},
	}
}

func newSettingsWeekendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "weekend <red|black>",
		Short:     "Set the weekend day text style",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.WeekendRed), string(domain.WeekendBlack)},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := domain.ParseWeekendStyle(args[0])
			if err != nil {
				return err
			}
			return applySettings(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
				return panel.SetWeekendStyle(s, w), nil
			})
		},
	}
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("settings edit needs an interactive terminal; use settings set instead")
			}
			st := app.loadSession(cmd.Context())
			edit := newSettingsEdit(st.Settings)
			if err := edit.form().Run(); err != nil {
				return err
			}
			next, err := edit.apply(st.Settings)
			if err != nil {
				return err
			}
			return applySettings(cmd, app, func(domain.PlannerSettings) (domain.PlannerSettings, error) {
				return next, nil
			})
		},
	}
}

func newColumnCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "column",
		Aliases: []string{"col"},
		Short:   "Manage the writable columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.loadSession(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatColumns(st.Settings.Columns))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: fmt.Sprintf("Append a column (at most %d)", panel.MaxColumns),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return applyColumns(cmd, app, panel.AddColumn)
			},
		},
		&cobra.Command{
			Use:   "remove <column>",
			Short: "Remove a column by id, position or id prefix",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return applyColumns(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
					id, err := resolveColumnID(s, args[0])
					if err != nil {
						return s, err
					}
					return panel.RemoveColumn(s, id)
				})
			},
		},
		&cobra.Command{
			Use:   "rename <column> <label>",
			Short: "Change a column's header label",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				label := strings.Join(args[1:], " ")
				return applyColumns(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
					id, err := resolveColumnID(s, args[0])
					if err != nil {
						return s, err
					}
					return panel.RenameColumn(s, id, label)
				})
			},
		},
		positionalNumbers(&cobra.Command{
			Use:   "resize <column> <mm>",
			Short: fmt.Sprintf("Set a column width (%g-%gmm)", panel.MinColumnWidth, panel.MaxColumnWidth),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				mm, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
				if err != nil {
					return fmt.Errorf("invalid width %q", args[1])
				}
				return applyColumns(cmd, app, func(s domain.PlannerSettings) (domain.PlannerSettings, error) {
					id, err := resolveColumnID(s, args[0])
					if err != nil {
						return s, err
					}
					return panel.ResizeColumn(s, id, mm)
				})
			},
		}),
	)

	return cmd
}

func applyColumns(cmd *cobra.Command, app *App, fn func(domain.PlannerSettings) (domain.PlannerSettings, error)) error {
	s, err := app.updateSettings(cmd.Context(), fn)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatColumns(s.Columns))
	fmt.Fprintln(out, formatter.FormatWidthStatus(panel.WidthStatus(s)))
	return nil
}

func presetNames() []string {
	names := make([]string, len(domain.SelectablePresets))
	for i, p := range domain.SelectablePresets {
		names[i] = string(p)
	}
	return names
}

// parseSelectablePreset rejects the legacy a4 alias for new templates.
func parseSelectablePreset(s string) (domain.PaperPreset, error) {
	p, err := domain.ParsePaperPreset(s)
	if err != nil {
		return "", err
	}
	if p == domain.PresetA4 {
		return "", fmt.Errorf("%w: a4 is only accepted in old links; use letter", domain.ErrUnknownPreset)
	}
	return p, nil
}

func numberFieldHelp() string {
	var b strings.Builder
	for _, f := range panel.NumberFields() {
		fmt.Fprintf(&b, "  %-22s %s (%g-%g, step %g)\n", f.Name, f.Label, f.Min, f.Max, f.Step)
	}
	return b.String()
}
