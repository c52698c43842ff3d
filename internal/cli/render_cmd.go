package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/wallplanner/internal/calendar"
	"github.com/alexanderramin/wallplanner/internal/cli/formatter"
	"github.com/alexanderramin/wallplanner/internal/layout"
	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/alexanderramin/wallplanner/internal/printhost"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPreviewCmd(app *App) *cobra.Command {
	var year, month, width int
	var yearMode bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the current month (or year) in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.loadSession(cmd.Context())
			y, m, err := monthFlags(st, year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if yearMode {
				fmt.Fprint(out, formatter.FormatYearOverview(layout.RenderYear(y, st.Settings, app.now())))
				return nil
			}

			if width <= 0 {
				width = app.termWidth()
			}
			page := layout.Render(y, m, st.Settings, app.now())
			fmt.Fprint(out, formatter.FormatMonthPreview(page, width))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatWidthStatus(panel.WidthStatus(st.Settings)))
			return nil
		},
	}

	addMonthFlags(cmd.Flags(), &year, &month, "show")
	cmd.Flags().IntVar(&width, "width", 0, "Output width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&yearMode, "year-mode", false, "Summarize all twelve months instead")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var year, month int
	var outPath string
	var yearMode, autoPrint bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the printable planner as a standalone HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.loadSession(cmd.Context())
			y, m, err := monthFlags(st, year, month)
			if err != nil {
				return err
			}

			var pages []layout.Page
			title := fmt.Sprintf("Planner %s %d", calendar.MonthName(m), y)
			if yearMode {
				pages = layout.RenderYear(y, st.Settings, app.now())
				title = "Planner " + strconv.Itoa(y)
			} else {
				pages = []layout.Page{layout.Render(y, m, st.Settings, app.now())}
			}
			opts := layout.HTMLOptions{Title: title, AutoPrint: autoPrint}

			if outPath == "" || outPath == "-" {
				return layout.WriteHTML(cmd.OutOrStdout(), pages, opts)
			}
			if err := writeHTMLFile(outPath, pages, opts); err != nil {
				return err
			}
			app.logger().Info("exported planner",
				zap.String("path", outPath), zap.Int("pages", len(pages)))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d page(s) to %s\n", len(pages), outPath)
			return nil
		},
	}

	addMonthFlags(cmd.Flags(), &year, &month, "export")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file, or - for stdout")
	cmd.Flags().BoolVar(&yearMode, "year-mode", false, "Export all twelve months with page breaks")
	cmd.Flags().BoolVar(&autoPrint, "print", false, "Open the print dialog when the file is opened")

	return cmd
}

func writeHTMLFile(path string, pages []layout.Page, opts layout.HTMLOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return layout.WriteHTML(f, pages, opts)
}

func newLinkCmd(app *App) *cobra.Command {
	var year, month int
	var base string
	var yearMode bool

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a self-contained print link for the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.loadSession(cmd.Context())
			y, m, err := monthFlags(st, year, month)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("base") {
				base = app.Config.Server.BaseURL
			}
			link, err := printhost.Link(base, y, m, st.Settings, yearMode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}

	addMonthFlags(cmd.Flags(), &year, &month, "link to")
	cmd.Flags().StringVar(&base, "base", "", "Scheme and host prefix (default: server.base_url)")
	cmd.Flags().BoolVar(&yearMode, "year-mode", false, "Link to the full-year print")

	return cmd
}
