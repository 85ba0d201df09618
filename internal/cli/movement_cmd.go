package cli

import (
	"fmt"

	"github.com/alexanderramin/earthmove/internal/cli/formatter"
	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/spf13/cobra"
)

// bindChangeFlags registers the measurement flags shared by add and edit.
// All of them are required.
func bindChangeFlags(cmd *cobra.Command, c *domain.MovementChange) {
	cmd.Flags().Float64Var(&c.Dimensions.Width, "width", 0, "Width in meters")
	cmd.Flags().Float64Var(&c.Dimensions.Length, "length", 0, "Length in meters")
	cmd.Flags().Float64Var(&c.Dimensions.Height, "height", 0, "Height (depth) in meters")
	cmd.Flags().Var(newTerrainValue(&c.Terrain), "terrain", "Terrain code 1-8 or key, e.g. arcilla_seca")
	cmd.Flags().Float64Var(&c.Coordinates.East, "east", 0, "UTM east (0-10000)")
	cmd.Flags().Float64Var(&c.Coordinates.North, "north", 0, "UTM north (0-10000)")
	for _, name := range []string{"width", "length", "height", "terrain", "east", "north"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func newAddCmd(app *App) *cobra.Command {
	var in domain.MovementInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new earth movement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Movements.Add(cmd.Context(), in, domain.AuditCreate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Recorded %s: %s, swelled %s",
				m.Descriptor, formatter.Volume(m.Volume.Total), formatter.Volume(m.AdjustedVolume()))))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Descriptor, "descriptor", "", "Unique movement descriptor")
	_ = cmd.MarkFlagRequired("descriptor")
	bindChangeFlags(cmd, &in.MovementChange)

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show DESCRIPTOR",
		Short: "Show one movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Movements.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMovement(m))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List movements in entry order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Movements.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No movements recorded.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMovementList(list))
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var change domain.MovementChange

	cmd := &cobra.Command{
		Use:   "edit DESCRIPTOR",
		Short: "Replace the measurements of a movement",
		Long:  "Replace dimensions, terrain and coordinates of an existing movement. The descriptor is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Movements.Edit(cmd.Context(), args[0], change)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Updated %s: %s, swelled %s",
				m.Descriptor, formatter.Volume(m.Volume.Total), formatter.Volume(m.AdjustedVolume()))))
			return nil
		},
	}

	bindChangeFlags(cmd, &change)
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove DESCRIPTOR",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a movement",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Movements.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed "+args[0]))
			return nil
		},
	}
}
