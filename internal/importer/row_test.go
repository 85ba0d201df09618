package importer

import (
	"testing"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"descriptor", "ancho", "largo", "alto", "tipo", "este", "norte"}

func TestParseRecords_SkipsHeaderAndShortRows(t *testing.T) {
	records := [][]string{
		header,
		{"A1", "2", "3", "4", "2", "100", "200"},
		{"B2", "1", "1", "1", "7", "0", "0"},
		{"C3", "1", "2", "3", "4"},
		{"D4", "0.5", "2", "2", "5", "9999.5", "1"},
	}

	b := ParseRecords(records)
	assert.Equal(t, header, b.Header)
	require.Len(t, b.Rows, 3)
	require.Len(t, b.Skipped, 1)

	assert.Equal(t, 4, b.Skipped[0].Line)
	assert.ErrorIs(t, b.Skipped[0].Err, domain.ErrMalformedImportRow)
	assert.Contains(t, b.Skipped[0].Err.Error(), "5 fields")

	first := b.Rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "A1", first.Descriptor)
	assert.Equal(t, domain.Dimensions{Width: 2, Length: 3, Height: 4}, first.Dimensions)
	assert.Equal(t, 2, first.TerrainCode)
	assert.Equal(t, domain.Coordinates{East: 100, North: 200}, first.Coordinates)
}

func TestParseRecords_HeaderNotValidated(t *testing.T) {
	b := ParseRecords([][]string{{"only one column"}, {"A1", "1", "1", "1", "1", "1", "1"}})
	assert.Len(t, b.Rows, 1)
	assert.Empty(t, b.Skipped)
}

func TestParseRecords_NonNumericSkipped(t *testing.T) {
	b := ParseRecords([][]string{
		header,
		{"A1", "two", "3", "4", "2", "100", "200"},
		{"B2", "2", "3", "4", "x", "100", "200"},
	})
	assert.Empty(t, b.Rows)
	require.Len(t, b.Skipped, 2)
	assert.Contains(t, b.Skipped[0].Err.Error(), `"two"`)
	assert.Contains(t, b.Skipped[1].Err.Error(), "terrain code")
}

func TestParseRecords_OutOfRangeTerrainKeptRaw(t *testing.T) {
	b := ParseRecords([][]string{header, {"A1", "2", "3", "4", "9", "1", "1"}})
	require.Len(t, b.Rows, 1)
	assert.Equal(t, 9, b.Rows[0].TerrainCode)
}

func TestParseRecords_DecimalCommaAndBlankLines(t *testing.T) {
	b := ParseRecords([][]string{
		header,
		{"", "", ""},
		{" A1 ", "1,5", "2", "2", "1", "10,25", "20"},
	})
	require.Len(t, b.Rows, 1)
	assert.Empty(t, b.Skipped)
	assert.Equal(t, "A1", b.Rows[0].Descriptor)
	assert.Equal(t, 1.5, b.Rows[0].Dimensions.Width)
	assert.Equal(t, 10.25, b.Rows[0].Coordinates.East)
	assert.Equal(t, 3, b.Rows[0].Line)
}

func TestParseRecords_ThousandsSeparator(t *testing.T) {
	b := ParseRecords([][]string{
		header,
		{"A1", "1,000.5", "2", "2", "1", "10", "20"},
	})
	require.Len(t, b.Rows, 1)
	assert.Equal(t, 1000.5, b.Rows[0].Dimensions.Width)
}

func TestParseRecords_Empty(t *testing.T) {
	b := ParseRecords(nil)
	assert.Nil(t, b.Header)
	assert.Empty(t, b.Rows)
}
