package cli

import (
	"fmt"

	"github.com/alexanderramin/wallplanner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or change the saved session",
	}

	var year, month int
	set := &cobra.Command{
		Use:   "set",
		Short: "Move the session to another year and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.loadSession(cmd.Context())
			y, m, err := monthFlags(st, year, month)
			if err != nil {
				return err
			}
			st.Year, st.Month = y, m
			app.saveSession(cmd.Context(), st)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatState(&st, app.storeBackend()))
			return nil
		},
	}
	addMonthFlags(set.Flags(), &year, &month, "move to")

	var steps int
	next := &cobra.Command{
		Use:   "next",
		Short: "Move the session forward by months (negative moves back)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.loadSession(cmd.Context())
			st.Year, st.Month = shiftMonth(st.Year, st.Month, steps)
			app.saveSession(cmd.Context(), st)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatState(&st, app.storeBackend()))
			return nil
		},
	}
	next.Flags().IntVarP(&steps, "by", "n", 1, "Number of months")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the raw saved session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatState(app.State.Read(cmd.Context()), app.storeBackend()))
				return nil
			},
		},
		set,
		next,
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the saved session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app.State.Clear(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
				return nil
			},
		},
	)

	return cmd
}

// shiftMonth moves (year, month) by n months, staying within 1900-2100.
func shiftMonth(year, month, n int) (int, int) {
	idx := year*12 + (month - 1) + n
	y, m := idx/12, idx%12+1
	if y < 1900 {
		return 1900, 1
	}
	if y > 2100 {
		return 2100, 12
	}
	return y, m
}
