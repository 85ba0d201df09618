package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/earthmove/internal/cli/formatter"
	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/service"
	"github.com/charmbracelet/huh"
)

const (
	actionAdd    = "add"
	actionTotal  = "total"
	actionReport = "report"
	actionImport = "import"
	actionEdit   = "edit"
	actionDelete = "delete"
	actionExit   = "exit"
)

var menuEntries = []struct{ action, label string }{
	{actionAdd, "Add movement"},
	{actionTotal, "Compute total cubication"},
	{actionReport, "Export report"},
	{actionImport, "Import from file"},
	{actionEdit, "Edit movement"},
	{actionDelete, "Delete movement"},
	{actionExit, "Exit"},
}

const defaultReportPath = "cubicacion.csv"

// runMenu loops over the numbered menu until the user exits. Failed actions
// are reported and the menu is shown again.
func runMenu(ctx context.Context, app *App, out io.Writer) error {
	for {
		var action string
		if err := menuForm(&action).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if action == actionExit {
			return nil
		}

		err := runMenuAction(ctx, app, out, action)
		switch {
		case err == nil, errors.Is(err, huh.ErrUserAborted):
		default:
			fmt.Fprintln(out, formatter.StyleRed.Render("Error: "+err.Error()))
		}
		fmt.Fprintln(out)
	}
}

func menuForm(action *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(menuEntries))
	for i, e := range menuEntries {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, e.label), e.action))
	}
	*action = actionAdd

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Earth movement").
				Options(options...).
				Value(action),
		),
	).WithTheme(earthmoveHuhTheme()).WithShowHelp(false)
}

func runMenuAction(ctx context.Context, app *App, out io.Writer, action string) error {
	switch action {
	case actionAdd:
		var f movementFields
		if err := movementForm(&f, newDescriptorValidator(ctx, app.Movements)).Run(); err != nil {
			return err
		}
		return menuAdd(ctx, app, out, f)

	case actionTotal:
		return menuTotal(ctx, app, out)

	case actionReport:
		path := defaultReportPath
		if err := pathForm("Report file (.csv or .xlsx)", defaultReportPath, &path).Run(); err != nil {
			return err
		}
		return menuReport(ctx, app, out, path)

	case actionImport:
		var path string
		var strict bool
		form := huh.NewForm(
			huh.NewGroup(
				pathInput("File to import (.csv or .xlsx)", "movimientos.csv", &path),
				huh.NewConfirm().
					Title("Stop at the first rejected row?").
					Affirmative("Yes").
					Negative("No").
					Value(&strict),
			),
		).WithTheme(earthmoveHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return err
		}
		return menuImport(ctx, app, out, path, strict)

	case actionEdit:
		descriptor, ok, err := chooseMovement(ctx, app, out, "Which movement to edit?")
		if err != nil || !ok {
			return err
		}
		current, err := app.Movements.Get(ctx, descriptor)
		if err != nil {
			return err
		}
		f := fieldsFromRecord(current)
		if err := movementForm(&f, nil).Run(); err != nil {
			return err
		}
		return menuEdit(ctx, app, out, descriptor, f)

	case actionDelete:
		descriptor, ok, err := chooseMovement(ctx, app, out, "Which movement to delete?")
		if err != nil || !ok {
			return err
		}
		var confirmed bool
		if err := confirmForm(fmt.Sprintf("Delete %s?", descriptor), &confirmed).Run(); err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
		return menuDelete(ctx, app, out, descriptor)
	}
	return fmt.Errorf("unknown menu action %q", action)
}

// chooseMovement asks for one of the stored descriptors. ok is false when
// nothing is stored.
func chooseMovement(ctx context.Context, app *App, out io.Writer, title string) (string, bool, error) {
	list, err := app.Movements.List(ctx)
	if err != nil {
		return "", false, err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No movements recorded.")
		return "", false, nil
	}

	var descriptor string
	if err := selectMovementForm(title, list, &descriptor).Run(); err != nil {
		return "", false, err
	}
	return descriptor, true, nil
}

func menuAdd(ctx context.Context, app *App, out io.Writer, f movementFields) error {
	in, err := f.input()
	if err != nil {
		return err
	}
	m, err := app.Movements.Add(ctx, in, domain.AuditCreate)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatMovement(m))
	return nil
}

func menuTotal(ctx context.Context, app *App, out io.Writer) error {
	total, err := app.Reports.TotalCubication(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatTotal(total))
	return nil
}

func menuReport(ctx context.Context, app *App, out io.Writer, path string) error {
	res, err := app.Reports.ExportReport(ctx, path)
	if errors.Is(err, domain.ErrNothingToReport) {
		fmt.Fprintln(out, "No movements recorded; no report written.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatExportResult(res))
	return nil
}

func menuImport(ctx context.Context, app *App, out io.Writer, path string, strict bool) error {
	res, err := app.Import.ImportFile(ctx, path, service.ImportOptions{Strict: strict})
	if res != nil {
		fmt.Fprint(out, formatter.FormatImportResult(res))
	}
	return err
}

func menuEdit(ctx context.Context, app *App, out io.Writer, descriptor string, f movementFields) error {
	change, err := f.change()
	if err != nil {
		return err
	}
	m, err := app.Movements.Edit(ctx, descriptor, change)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatMovement(m))
	return nil
}

func menuDelete(ctx context.Context, app *App, out io.Writer, descriptor string) error {
	if err := app.Movements.Remove(ctx, descriptor); err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.Success("Removed "+descriptor))
	return nil
}
