package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/importer"
	"github.com/alexanderramin/earthmove/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatMovementList_IncludesTotal(t *testing.T) {
	out := FormatMovementList([]domain.MovementSummary{
		{Descriptor: "A1", RawVolume: 24, Terrain: domain.TerrainDryClay, Coordinates: domain.Coordinates{East: 100, North: 200}},
		{Descriptor: "B2", RawVolume: 1, Terrain: domain.TerrainRock50},
	})

	assert.Contains(t, out, "DESCRIPTOR")
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "arcilla_seca")
	assert.Contains(t, out, "100, 200")
	assert.Contains(t, out, "43.44 m³")
	assert.Contains(t, out, "1.75 m³")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "45.19 m³")
}

func TestFormatMovement_Detail(t *testing.T) {
	now := time.Now()
	out := FormatMovement(&domain.MovementRecord{
		ID:          "12345678-aaaa-bbbb-cccc-1234567890ab",
		Descriptor:  "A1",
		Volume:      domain.Volume{Dimensions: domain.Dimensions{Width: 2, Length: 3, Height: 4}, Total: 24},
		Terrain:     domain.TerrainDryClay,
		SwellFactor: 0.81,
		Coordinates: domain.Coordinates{East: 100, North: 200},
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "2 × 3 × 4 m")
	assert.Contains(t, out, "24.00 m³")
	assert.Contains(t, out, "43.44 m³")
	assert.Contains(t, out, "81%")
	assert.Contains(t, out, "code 2")
	assert.Contains(t, out, "12345678")
	assert.NotContains(t, out, "aaaa")
}

func TestFormatTerrainCatalog_ListsAllCodes(t *testing.T) {
	out := FormatTerrainCatalog()
	for _, tt := range domain.TerrainTypes() {
		assert.Contains(t, out, tt.Key())
	}
	assert.Contains(t, out, "70%")
	assert.Equal(t, 2+len(domain.TerrainTypes()), strings.Count(out, "\n"))
}

func TestFormatAuditLog(t *testing.T) {
	out := FormatAuditLog([]domain.AuditEntry{
		{ID: 1, RecordedOn: time.Now(), Action: domain.AuditCreate, Descriptor: "A1"},
		{ID: 2, RecordedOn: time.Now(), Action: domain.AuditDelete, Descriptor: "A1"},
	})
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "delete")
}

func TestFormatImportResult(t *testing.T) {
	out := FormatImportResult(&service.ImportResult{
		Created: []string{"A1", "B2"},
		Skipped: []importer.Skipped{{Line: 4, Err: domain.ErrMalformedImportRow}},
		Failed:  []service.RowFailure{{Line: 5, Descriptor: "Z9", Err: errors.New("boom")}},
	})
	assert.Contains(t, out, "Imported 2 movements")
	assert.Contains(t, out, "Skipped 1 malformed rows")
	assert.Contains(t, out, "line 4:")
	assert.Contains(t, out, "Rejected 1 rows")
	assert.Contains(t, out, "Z9: boom")
}

func TestTable_RightAlign(t *testing.T) {
	out := Table{
		Headers:    []string{"NAME", "QTY"},
		Rows:       [][]string{{"a", "1"}, {"b", "100"}},
		RightAlign: map[int]bool{1: true},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "  1"))
	assert.True(t, strings.HasSuffix(lines[3], "100"))
}
