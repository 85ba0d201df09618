package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TerrainStyle colors a terrain by family: clay yellow, gravel blue, rock purple.
func TerrainStyle(t domain.TerrainType) lipgloss.Style {
	switch t {
	case domain.TerrainNaturalClay, domain.TerrainDryClay, domain.TerrainWetClay:
		return StyleYellow
	case domain.TerrainDryGravel, domain.TerrainWetGravel:
		return StyleBlue
	case domain.TerrainRock75, domain.TerrainRock50, domain.TerrainRock25:
		return StylePurple
	default:
		return StyleDim
	}
}

// AuditActionStyle returns the style used for an audit action label.
func AuditActionStyle(a domain.AuditAction) lipgloss.Style {
	switch a {
	case domain.AuditCreate, domain.AuditImport:
		return StyleGreen
	case domain.AuditEdit:
		return StyleYellow
	case domain.AuditDelete:
		return StyleRed
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a one-line confirmation.
func Success(text string) string {
	return StyleGreen.Render("✔ ") + text
}
