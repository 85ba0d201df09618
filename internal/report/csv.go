package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/earthmove/internal/domain"
)

// WriteCSV writes r as delimited text.
func WriteCSV(w io.Writer, r *domain.Report, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	if err := cw.WriteAll(Records(r)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
