package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/earthmove/internal/service"
)

func FormatTotal(total float64) string {
	return fmt.Sprintf("%s %s", Bold("Total cubication:"), StyleGreen.Render(Volume(total)))
}

func FormatExportResult(res *service.ExportResult) string {
	return Success(fmt.Sprintf("Wrote %s report to %s (%d movements, total %s)",
		strings.ToUpper(res.Format), res.Path, res.Lines, Volume(res.Total)))
}

// FormatImportResult summarizes an import, listing every row that was not
// stored with the reason.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder

	b.WriteString(Success(fmt.Sprintf("Imported %d movements", len(res.Created))))
	b.WriteString("\n")

	if len(res.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Skipped %d malformed rows:", len(res.Skipped))))
		b.WriteString("\n")
		for _, s := range res.Skipped {
			fmt.Fprintf(&b, "  %s %v\n", Dim(fmt.Sprintf("line %d:", s.Line)), s.Err)
		}
	}

	if len(res.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("Rejected %d rows:", len(res.Failed))))
		b.WriteString("\n")
		for _, f := range res.Failed {
			fmt.Fprintf(&b, "  %s %s: %v\n", Dim(fmt.Sprintf("line %d:", f.Line)), f.Descriptor, f.Err)
		}
	}
	return b.String()
}
