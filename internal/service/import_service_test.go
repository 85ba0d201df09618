package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/repository"
	"github.com/alexanderramin/earthmove/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var importHeader = []string{"descriptor", "ancho", "largo", "alto", "tipo", "este", "norte"}

func newImportServices(t *testing.T, observers ...UseCaseObserver) (MovementService, ImportService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	movements := NewMovementService(
		repository.NewSQLiteMovementRepo(database),
		repository.NewSQLiteAuditRepo(database),
		testutil.NewTestUoW(database),
	)
	return movements, NewImportService(movements, ';', observers...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportService_ImportFileSkipsShortRows(t *testing.T) {
	movements, imports := newImportServices(t)
	ctx := context.Background()

	path := writeFile(t, "movimientos.csv", "descriptor;ancho;largo;alto;tipo;este;norte\n"+
		"A1;2;3;4;2;100;200\n"+
		"B2;1;1;1;7;0;0\n"+
		"C3;1;2;3;4\n"+
		"D4;0,5;2;2;5;9999,5;1\n")

	res, err := imports.ImportFile(ctx, path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2", "D4"}, res.Created)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 4, res.Skipped[0].Line)
	assert.ErrorIs(t, res.Skipped[0].Err, domain.ErrMalformedImportRow)
	assert.Empty(t, res.Failed)

	list, err := movements.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "D4", list[2].Descriptor)
	assert.Equal(t, 2.0, list[2].RawVolume)

	entries, err := movements.AuditLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, domain.AuditImport, e.Action)
	}
}

func TestImportService_ImportFileXLSX(t *testing.T) {
	movements, imports := newImportServices(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "movimientos.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &importHeader))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{"X1", 2, 3, 4, 2, 100, 200}))
	require.NoError(t, x.SaveAs(path))
	require.NoError(t, x.Close())

	res, err := imports.ImportFile(ctx, path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"X1"}, res.Created)

	got, err := movements.Get(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, 24.0, got.Volume.Total)
}

func TestImportService_MissingFile(t *testing.T) {
	_, imports := newImportServices(t)

	_, err := imports.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), ImportOptions{})
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestImportService_BestEffortContinuesPastRejectedRows(t *testing.T) {
	movements, imports := newImportServices(t)
	ctx := context.Background()

	_, err := movements.Add(ctx, testutil.NewTestMovement("DUP"), domain.AuditCreate)
	require.NoError(t, err)

	res, err := imports.ImportRecords(ctx, [][]string{
		importHeader,
		{"A1", "2", "3", "4", "2", "100", "200"},
		{"DUP", "1", "1", "1", "1", "1", "1"},
		{"BAD", "1", "1", "1", "9", "1", "1"},
		{"FAR", "1", "1", "1", "1", "10001", "1"},
		{"B2", "1", "1", "1", "7", "0", "0"},
	}, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, res.Created)
	require.Len(t, res.Failed, 3)

	assert.Equal(t, 3, res.Failed[0].Line)
	assert.Equal(t, "DUP", res.Failed[0].Descriptor)
	assert.ErrorIs(t, res.Failed[0].Err, domain.ErrDuplicateDescriptor)
	assert.ErrorIs(t, res.Failed[1].Err, domain.ErrInvalidTerrainType)
	assert.ErrorIs(t, res.Failed[2].Err, domain.ErrInvalidCoordinateRange)

	list, err := movements.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestImportService_StrictStopsAtFirstFailure(t *testing.T) {
	movements, imports := newImportServices(t)
	ctx := context.Background()

	res, err := imports.ImportRecords(ctx, [][]string{
		importHeader,
		{"A1", "2", "3", "4", "2", "100", "200"},
		{"BAD", "1", "1", "1", "0", "1", "1"},
		{"B2", "1", "1", "1", "7", "0", "0"},
	}, ImportOptions{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTerrainType)
	assert.Contains(t, err.Error(), "line 3")

	require.NotNil(t, res)
	assert.Equal(t, []string{"A1"}, res.Created)
	require.Len(t, res.Failed, 1)

	// Rows stored before the failure stay committed.
	list, err := movements.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A1", list[0].Descriptor)
}

func TestImportService_StrictIgnoresMalformedRows(t *testing.T) {
	_, imports := newImportServices(t)

	res, err := imports.ImportRecords(context.Background(), [][]string{
		importHeader,
		{"A1", "2", "3"},
		{"B2", "1", "1", "1", "7", "0", "0"},
	}, ImportOptions{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"B2"}, res.Created)
	assert.Len(t, res.Skipped, 1)
}

func TestImportService_EmptyInput(t *testing.T) {
	_, imports := newImportServices(t)

	res, err := imports.ImportRecords(context.Background(), nil, ImportOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Failed)
}

func TestImportService_CanceledContext(t *testing.T) {
	movements, imports := newImportServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := imports.ImportRecords(ctx, [][]string{
		importHeader,
		{"A1", "2", "3", "4", "2", "100", "200"},
	}, ImportOptions{})
	assert.ErrorIs(t, err, context.Canceled)

	list, err := movements.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestImportService_ObserverCounts(t *testing.T) {
	var buf bytes.Buffer
	_, imports := newImportServices(t, NewLogUseCaseObserver(&buf))

	_, err := imports.ImportRecords(context.Background(), [][]string{
		importHeader,
		{"A1", "2", "3", "4", "2", "100", "200"},
		{"short"},
	}, ImportOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "use_case=import-movements")
	assert.Contains(t, out, "created=1")
	assert.Contains(t, out, "skipped=1")
	assert.Contains(t, out, "failed=0")
}
