package report

import (
	"fmt"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Cubicacion"

// WriteXLSX saves r as a single-sheet workbook at path. Volumes are stored
// as numeric cells.
func WriteXLSX(path string, r *domain.Report) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(x.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rows := make([][]any, 0, len(r.Lines)+3)
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	rows = append(rows, header)
	for _, l := range r.Lines {
		rows = append(rows, []any{l.Descriptor, l.RawVolume, l.Terrain.Key(), l.Coordinates.String(), l.AdjustedVolume})
	}
	rows = append(rows, nil, []any{totalLabel, r.Total})

	for i := range rows {
		if len(rows[i]) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheetName, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
