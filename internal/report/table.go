// Package report renders a cubication report to delimited text or to an
// xlsx workbook.
package report

import "github.com/alexanderramin/earthmove/internal/domain"

// Columns is the header row of every report.
var Columns = []string{
	"Descriptor",
	"Volumen (m³)",
	"Tipo de Terreno",
	"Coordenadas UTM (Este, Norte)",
	"Volumen con Esponjamiento (m³)",
}

const totalLabel = "Cubicación total"

// Records lays the report out as rows: header, one row per movement, a
// blank separator and the grand total.
func Records(r *domain.Report) [][]string {
	out := make([][]string, 0, len(r.Lines)+3)
	out = append(out, Columns)
	for _, l := range r.Lines {
		out = append(out, []string{
			l.Descriptor,
			domain.FormatNumber(l.RawVolume),
			l.Terrain.Key(),
			l.Coordinates.String(),
			domain.FormatNumber(l.AdjustedVolume),
		})
	}
	out = append(out, []string{}, []string{totalLabel, domain.FormatNumber(r.Total)})
	return out
}
