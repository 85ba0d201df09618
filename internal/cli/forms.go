package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/earthmove/internal/cli/formatter"
	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/service"
	"github.com/charmbracelet/huh"
)

// movementFields holds the raw text of the movement form. Each input is
// validated by the form, so a submitted form always converts cleanly.
type movementFields struct {
	Descriptor string
	Width      string
	Length     string
	Height     string
	Terrain    domain.TerrainType
	East       string
	North      string
}

func fieldsFromRecord(m *domain.MovementRecord) movementFields {
	return movementFields{
		Descriptor: m.Descriptor,
		Width:      domain.FormatNumber(m.Volume.Width),
		Length:     domain.FormatNumber(m.Volume.Length),
		Height:     domain.FormatNumber(m.Volume.Height),
		Terrain:    m.Terrain,
		East:       domain.FormatNumber(m.Coordinates.East),
		North:      domain.FormatNumber(m.Coordinates.North),
	}
}

func (f movementFields) change() (domain.MovementChange, error) {
	var c domain.MovementChange
	for _, n := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"width", f.Width, &c.Dimensions.Width},
		{"length", f.Length, &c.Dimensions.Length},
		{"height", f.Height, &c.Dimensions.Height},
		{"east", f.East, &c.Coordinates.East},
		{"north", f.North, &c.Coordinates.North},
	} {
		v, err := domain.ParseNumber(n.raw)
		if err != nil {
			return domain.MovementChange{}, fmt.Errorf("%s: %q is not a number", n.name, n.raw)
		}
		*n.dst = v
	}
	c.Terrain = f.Terrain
	return c, c.Validate()
}

func (f movementFields) input() (domain.MovementInput, error) {
	c, err := f.change()
	if err != nil {
		return domain.MovementInput{}, err
	}
	return domain.MovementInput{Descriptor: f.Descriptor, MovementChange: c}, nil
}

func validateDescriptor(s string) error {
	if _, err := domain.NormalizeDescriptor(s); err != nil {
		return fmt.Errorf("descriptor is required")
	}
	return nil
}

// newDescriptorValidator rejects empty descriptors and ones already in use,
// so the add form re-prompts before the remaining fields are filled in.
// Lookup failures other than not-found are left for Add to report.
func newDescriptorValidator(ctx context.Context, movements service.MovementService) func(string) error {
	return func(s string) error {
		if err := validateDescriptor(s); err != nil {
			return err
		}
		_, err := movements.Get(ctx, s)
		if err == nil {
			return fmt.Errorf("descriptor %q already exists", strings.TrimSpace(s))
		}
		return nil
	}
}

func validatePositiveNumber(s string) error {
	v, err := domain.ParseNumber(s)
	if err != nil || math.IsInf(v, 0) || !(v > 0) {
		return fmt.Errorf("enter a number greater than zero")
	}
	return nil
}

func validateCoordinate(s string) error {
	v, err := domain.ParseNumber(s)
	if err != nil || math.IsNaN(v) || v < domain.CoordinateMin || v > domain.CoordinateMax {
		return fmt.Errorf("enter a value between %s and %s",
			domain.FormatNumber(domain.CoordinateMin), domain.FormatNumber(domain.CoordinateMax))
	}
	return nil
}

func numberInput(title string, value *string, validate func(string) error) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validate)
}

func terrainOptions() []huh.Option[domain.TerrainType] {
	types := domain.TerrainTypes()
	options := make([]huh.Option[domain.TerrainType], 0, len(types))
	for _, t := range types {
		label := fmt.Sprintf("%d. %s (%s)", t.Code(), t.Label(), formatter.Factor(t.Factor()))
		options = append(options, huh.NewOption(label, t))
	}
	return options
}

// movementForm collects a full movement. The descriptor is asked only when
// checkDescriptor is set (adding); edits keep it.
func movementForm(f *movementFields, checkDescriptor func(string) error) *huh.Form {
	if !f.Terrain.Valid() {
		f.Terrain = domain.TerrainNaturalClay
	}

	var fields []huh.Field
	if checkDescriptor != nil {
		fields = append(fields, huh.NewInput().
			Title("Descriptor").
			Placeholder("A1").
			Value(&f.Descriptor).
			Validate(checkDescriptor))
	}
	fields = append(fields,
		numberInput("Width (m)", &f.Width, validatePositiveNumber),
		numberInput("Length (m)", &f.Length, validatePositiveNumber),
		numberInput("Height (m)", &f.Height, validatePositiveNumber),
		huh.NewSelect[domain.TerrainType]().
			Title("Terrain type").
			Options(terrainOptions()...).
			Value(&f.Terrain),
		numberInput("UTM East (0-10000)", &f.East, validateCoordinate),
		numberInput("UTM North (0-10000)", &f.North, validateCoordinate),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(earthmoveHuhTheme()).WithShowHelp(false)
}

func pathInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("a file path is required")
			}
			return nil
		})
}

func pathForm(title, placeholder string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(pathInput(title, placeholder, value)),
	).WithTheme(earthmoveHuhTheme()).WithShowHelp(false)
}

func selectMovementForm(title string, list []domain.MovementSummary, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(list))
	for _, m := range list {
		label := fmt.Sprintf("%s · %s %s", m.Descriptor, formatter.Volume(m.RawVolume), m.Terrain.Key())
		options = append(options, huh.NewOption(label, m.Descriptor))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(result),
		),
	).WithTheme(earthmoveHuhTheme()).WithShowHelp(false)
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(earthmoveHuhTheme()).WithShowHelp(false)
}
