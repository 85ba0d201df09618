package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/earthmove/internal/domain"
)

// FormatMovementList renders stored movements with their adjusted volumes
// and a total cubication footer.
func FormatMovementList(movements []domain.MovementSummary) string {
	rows := make([][]string, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, []string{
			Bold(m.Descriptor),
			Volume(m.RawVolume),
			TerrainStyle(m.Terrain).Render(m.Terrain.Key()),
			m.Coordinates.String(),
			Volume(m.AdjustedVolume()),
		})
	}

	table := Table{
		Headers:    []string{"DESCRIPTOR", "VOLUME", "TERRAIN", "EAST, NORTH", "SWELLED"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 4: true},
		Footer: [][]string{{
			StyleHeader.Render("TOTAL"), "", "", "",
			StyleGreen.Render(Volume(domain.TotalCubication(movements))),
		}},
	}
	return table.Render()
}

// FormatMovement renders the detail view of one movement.
func FormatMovement(m *domain.MovementRecord) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-12s", label)), value)
	}

	line("ID", TruncID(m.ID))
	line("Dimensions", fmt.Sprintf("%s × %s × %s m",
		domain.FormatNumber(m.Volume.Width),
		domain.FormatNumber(m.Volume.Length),
		domain.FormatNumber(m.Volume.Height)))
	line("Volume", Volume(m.Volume.Total))
	line("Terrain", fmt.Sprintf("%s %s",
		TerrainStyle(m.Terrain).Render(m.Terrain.Label()),
		Dim(fmt.Sprintf("(code %d, swell %s)", m.Terrain.Code(), Factor(m.SwellFactor)))))
	line("Swelled", StyleGreen.Render(Volume(m.AdjustedVolume())))
	line("UTM E, N", m.Coordinates.String())
	line("Updated", HumanDate(m.UpdatedAt))

	return RenderBox(m.Descriptor, strings.TrimRight(b.String(), "\n"))
}

// FormatTerrainCatalog lists every terrain type with its code and swell factor.
func FormatTerrainCatalog() string {
	types := domain.TerrainTypes()
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.Code()),
			TerrainStyle(t).Render(t.Key()),
			t.Label(),
			Factor(t.Factor()),
		})
	}
	table := Table{
		Headers:    []string{"CODE", "KEY", "TERRAIN", "SWELL"},
		Rows:       rows,
		RightAlign: map[int]bool{0: true, 3: true},
	}
	return table.Render()
}

// FormatAuditLog lists audit entries. Entries carry a date only.
func FormatAuditLog(entries []domain.AuditEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", e.ID)),
			e.RecordedOn.Format("2006-01-02"),
			AuditActionStyle(e.Action).Render(string(e.Action)),
			e.Descriptor,
		})
	}
	table := Table{
		Headers: []string{"#", "WHEN", "ACTION", "DESCRIPTOR"},
		Rows:    rows,
	}
	return table.Render()
}
