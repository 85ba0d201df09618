package cli

import (
	"github.com/alexanderramin/earthmove/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// earthmoveHuhTheme styles menus and movement forms with the formatter
// palette. Validation errors stay red so a rejected dimension or coordinate
// is visible before the field re-prompts.
func earthmoveHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(formatter.ColorHeader)
	f.Title = fg(formatter.ColorHeader).Bold(true)
	f.Description = fg(formatter.ColorDim)
	f.SelectSelector = fg(formatter.ColorYellow).SetString("▸ ")
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)
	f.TextInput.Cursor = fg(formatter.ColorYellow)
	f.TextInput.Prompt = fg(formatter.ColorHeader)
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = fg(formatter.ColorDim)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.ErrorIndicator = fg(formatter.ColorRed).SetString(" *")

	b := &t.Blurred
	b.Base = b.Base.BorderForeground(formatter.ColorDim)
	for _, s := range []*lipgloss.Style{
		&b.Title, &b.SelectSelector, &b.SelectedOption, &b.UnselectedOption,
		&b.TextInput.Prompt, &b.TextInput.Text,
	} {
		*s = fg(formatter.ColorDim)
	}

	return t
}
