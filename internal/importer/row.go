package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/earthmove/internal/domain"
)

// Column order of an import file.
const (
	colDescriptor = iota
	colWidth
	colLength
	colHeight
	colTerrain
	colEast
	colNorth

	// FieldCount is the number of fields a data row must carry.
	FieldCount
)

// Row is one well-formed data row. The terrain code is kept raw so the
// caller decides how to handle codes outside the catalog.
type Row struct {
	Line        int
	Descriptor  string
	Dimensions  domain.Dimensions
	TerrainCode int
	Coordinates domain.Coordinates
}

// Skipped is a data row that could not be parsed.
type Skipped struct {
	Line   int
	Fields []string
	Err    error
}

// Batch is the parsed content of an import source.
type Batch struct {
	Header  []string
	Rows    []Row
	Skipped []Skipped
}

// ParseRecords turns raw records into rows. The first record is the header
// and is not validated. Short or non-numeric rows are skipped with a
// diagnostic; nothing here is fatal.
func ParseRecords(records [][]string) *Batch {
	b := &Batch{}
	if len(records) == 0 {
		return b
	}
	b.Header = records[0]

	for i, rec := range records[1:] {
		line := i + 2
		if isBlank(rec) {
			continue
		}
		row, err := parseRow(line, rec)
		if err != nil {
			b.Skipped = append(b.Skipped, Skipped{Line: line, Fields: rec, Err: err})
			continue
		}
		b.Rows = append(b.Rows, row)
	}
	return b
}

func parseRow(line int, rec []string) (Row, error) {
	if len(rec) < FieldCount {
		return Row{}, fmt.Errorf("%w: line %d has %d fields, want %d", domain.ErrMalformedImportRow, line, len(rec), FieldCount)
	}

	row := Row{Line: line, Descriptor: strings.TrimSpace(rec[colDescriptor])}
	nums := []struct {
		col int
		dst *float64
	}{
		{colWidth, &row.Dimensions.Width},
		{colLength, &row.Dimensions.Length},
		{colHeight, &row.Dimensions.Height},
		{colEast, &row.Coordinates.East},
		{colNorth, &row.Coordinates.North},
	}
	for _, n := range nums {
		v, err := domain.ParseNumber(rec[n.col])
		if err != nil {
			return Row{}, fmt.Errorf("%w: line %d column %d: %q is not a number", domain.ErrMalformedImportRow, line, n.col+1, rec[n.col])
		}
		*n.dst = v
	}

	code, err := strconv.Atoi(strings.TrimSpace(rec[colTerrain]))
	if err != nil {
		return Row{}, fmt.Errorf("%w: line %d: terrain code %q is not an integer", domain.ErrMalformedImportRow, line, rec[colTerrain])
	}
	row.TerrainCode = code
	return row, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
