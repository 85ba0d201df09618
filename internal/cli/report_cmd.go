package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/earthmove/internal/cli/formatter"
	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/spf13/cobra"
)

func newTotalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the swell-adjusted total cubication",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := app.Reports.TotalCubication(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTotal(total))
			return nil
		},
	}
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report PATH",
		Short: "Export the cubication report",
		Long:  "Export the cubication report. PATH ending in .xlsx writes a workbook; anything else writes delimited text.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Reports.ExportReport(cmd.Context(), args[0])
			if errors.Is(err, domain.ErrNothingToReport) {
				fmt.Fprintln(cmd.OutOrStdout(), "No movements recorded; no report written.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExportResult(res))
			return nil
		},
	}
}

func newTerrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terrain",
		Short: "List terrain types and swell factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTerrainCatalog())
			return nil
		},
	}
}

func newAuditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show the audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Movements.AuditLog(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Audit log is empty.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAuditLog(entries))
			return nil
		},
	}
}
