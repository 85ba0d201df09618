package cli

import (
	"fmt"

	"github.com/alexanderramin/earthmove/internal/cli/formatter"
	"github.com/alexanderramin/earthmove/internal/service"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var opts service.ImportOptions

	cmd := &cobra.Command{
		Use:   "import PATH",
		Short: "Bulk-load movements from a CSV or xlsx file",
		Long: `Bulk-load movements. Columns: descriptor, width, length, height,
terrain code, east, north. The first row is a header.

Rows that cannot be stored are reported and skipped unless --strict is set,
in which case the import stops at the first rejected row. Rows stored before
that point are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(cmd.Context(), args[0], opts)
			if res != nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Stop at the first row that cannot be stored")
	return cmd
}
