package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple aligned table. Columns listed in RightAlign are padded
// on the left, which keeps numeric columns lined up on the units digit.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign map[int]bool
	// Footer rows are separated from Rows by a dim rule.
	Footer [][]string
}

// Render lays the table out with a header separator. Widths are measured on
// visible text so styled cells align.
func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	for _, row := range t.Footer {
		measure(row)
	}

	const colGap = 2

	var b strings.Builder
	styled := make([]string, cols)
	for i, h := range t.Headers {
		styled[i] = StyleHeader.Render(h)
	}
	t.writeRow(&b, styled, widths, colGap)
	writeRule(&b, widths, colGap)

	for _, row := range t.Rows {
		t.writeRow(&b, row, widths, colGap)
	}
	if len(t.Footer) > 0 {
		writeRule(&b, widths, colGap)
		for _, row := range t.Footer {
			t.writeRow(&b, row, widths, colGap)
		}
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, row []string, widths []int, gap int) {
	cols := len(widths)
	for i := 0; i < cols; i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		last := i == cols-1
		if t.RightAlign[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
			if !last {
				b.WriteString(strings.Repeat(" ", gap))
			}
			continue
		}
		b.WriteString(cell)
		if !last {
			b.WriteString(strings.Repeat(" ", pad+gap))
		}
	}
	b.WriteString("\n")
}

func writeRule(b *strings.Builder, widths []int, gap int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	b.WriteString("\n")
}
