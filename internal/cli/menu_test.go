package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields(descriptor string) movementFields {
	return movementFields{
		Descriptor: descriptor,
		Width:      "2",
		Length:     "3",
		Height:     "4",
		Terrain:    domain.TerrainDryClay,
		East:       "100",
		North:      "200",
	}
}

func TestMenuEntries_Order(t *testing.T) {
	var actions []string
	for _, e := range menuEntries {
		actions = append(actions, e.action)
	}
	assert.Equal(t, []string{actionAdd, actionTotal, actionReport, actionImport, actionEdit, actionDelete, actionExit}, actions)
}

func TestValidatePositiveNumber(t *testing.T) {
	for _, ok := range []string{"1", "0.5", "2,5", " 3 ", "1,000.5"} {
		assert.NoError(t, validatePositiveNumber(ok), ok)
	}
	for _, bad := range []string{"", "0", "-1", "abc", "NaN", "Inf"} {
		assert.Error(t, validatePositiveNumber(bad), bad)
	}
}

func TestValidateCoordinate(t *testing.T) {
	for _, ok := range []string{"0", "10000", "5000,25"} {
		assert.NoError(t, validateCoordinate(ok), ok)
	}
	for _, bad := range []string{"", "-0.1", "10000.01", "x", "NaN"} {
		assert.Error(t, validateCoordinate(bad), bad)
	}
}

func TestValidateDescriptor(t *testing.T) {
	assert.NoError(t, validateDescriptor("A1"))
	assert.Error(t, validateDescriptor("   "))
}

func TestDescriptorValidator_RejectsExisting(t *testing.T) {
	app := testApp(t)
	seedMovement(t, app, "A1")
	validate := newDescriptorValidator(context.Background(), app.Movements)

	err := validate(" A1 ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"A1" already exists`)

	assert.NoError(t, validate("B2"))
	assert.EqualError(t, validate("  "), "descriptor is required")
}

func TestMovementFields_Input(t *testing.T) {
	f := validFields("A1")
	f.Width = "2,5"

	in, err := f.input()
	require.NoError(t, err)
	assert.Equal(t, "A1", in.Descriptor)
	assert.Equal(t, domain.Dimensions{Width: 2.5, Length: 3, Height: 4}, in.Dimensions)
	assert.Equal(t, domain.Coordinates{East: 100, North: 200}, in.Coordinates)
}

func TestMovementFields_InputRejectsGarbage(t *testing.T) {
	f := validFields("A1")
	f.North = "north"

	_, err := f.input()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "north")
}

func TestFieldsFromRecord_RoundTrip(t *testing.T) {
	app := testApp(t)
	seedMovement(t, app, "A1")

	m, err := app.Movements.Get(context.Background(), "A1")
	require.NoError(t, err)

	f := fieldsFromRecord(m)
	c, err := f.change()
	require.NoError(t, err)
	assert.Equal(t, m.Volume.Dimensions, c.Dimensions)
	assert.Equal(t, m.Terrain, c.Terrain)
	assert.Equal(t, m.Coordinates, c.Coordinates)
}

func TestMenuAddEditDelete(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, menuAdd(ctx, app, &out, validFields("A1")))
	assert.Contains(t, out.String(), "43.44 m³")

	err := menuAdd(ctx, app, &out, validFields("A1"))
	assert.ErrorIs(t, err, domain.ErrDuplicateDescriptor)

	f := validFields("A1")
	f.Width, f.Length, f.Height = "1", "1", "1"
	f.Terrain = domain.TerrainRock50
	out.Reset()
	require.NoError(t, menuEdit(ctx, app, &out, "A1", f))
	assert.Contains(t, out.String(), "1.75 m³")

	out.Reset()
	require.NoError(t, menuDelete(ctx, app, &out, "A1"))
	assert.Contains(t, out.String(), "Removed A1")

	assert.ErrorIs(t, menuDelete(ctx, app, &out, "A1"), domain.ErrNotFound)
}

func TestMenuTotalAndReport(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "cubicacion.csv")

	require.NoError(t, menuReport(ctx, app, &out, path))
	assert.Contains(t, out.String(), "no report written")
	assert.NoFileExists(t, path)

	seedMovement(t, app, "A1")
	out.Reset()
	require.NoError(t, menuTotal(ctx, app, &out))
	assert.Contains(t, out.String(), "43.44 m³")

	out.Reset()
	require.NoError(t, menuReport(ctx, app, &out, path))
	assert.FileExists(t, path)
}

func TestMenuImport(t *testing.T) {
	app := testApp(t)
	var out bytes.Buffer
	path := writeImportFile(t, "h\nA1;2;3;4;2;100;200\n")

	require.NoError(t, menuImport(context.Background(), app, &out, path, false))
	assert.Contains(t, out.String(), "Imported 1 movements")
}

func TestChooseMovement_EmptyStore(t *testing.T) {
	app := testApp(t)
	var out bytes.Buffer

	_, ok, err := chooseMovement(context.Background(), app, &out, "Which?")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "No movements recorded.")
}
