package cli

import (
	"time"

	"github.com/alexanderramin/wallplanner/internal/cli/formatter"
	"github.com/alexanderramin/wallplanner/internal/config"
	"github.com/alexanderramin/wallplanner/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds everything the commands need. main wires it; tests build it
// around an in-memory store.
type App struct {
	State  *store.Store
	Config config.Config
	Logger *zap.Logger

	// Now is the clock for default year/month and the mini calendars' today.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// TermWidth returns the output terminal width, or 0 when unknown.
	TermWidth func() int
}

func (a *App) storeBackend() string {
	if a.Config.Store.Backend == "" {
		return "unknown"
	}
	return a.Config.Store.Backend
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) termWidth() int {
	if a.TermWidth != nil {
		if w := a.TermWidth(); w > 0 {
			return w
		}
	}
	return formatter.DefaultPreviewWidth
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "wallplanner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wallplanner",
		Short:         "Printable row-per-day monthly wall planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPreviewCmd(app),
		newExportCmd(app),
		newLinkCmd(app),
		newServeCmd(app),
		newSettingsCmd(app),
		newStateCmd(app),
		newTUICmd(app),
	)

	return root
}
