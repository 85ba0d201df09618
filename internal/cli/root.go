package cli

import (
	"github.com/alexanderramin/earthmove/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Movements service.MovementService
	Reports   service.ReportService
	Import    service.ImportService

	// IsInteractive reports whether stdin is a terminal. The bare command
	// opens the menu only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "earthmove" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "earthmove",
		Short: "Earth movement volumes and swell-adjusted cubication",
		Long: `earthmove records excavation volumes with their terrain type and UTM
coordinates, and computes the total cubication after soil swell.

Run without arguments in a terminal to open the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runMenu(cmd.Context(), app, cmd.OutOrStdout())
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newShowCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newTotalCmd(app),
		newReportCmd(app),
		newImportCmd(app),
		newTerrainCmd(),
		newAuditCmd(app),
	)

	return root
}
