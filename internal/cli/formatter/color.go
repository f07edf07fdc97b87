package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Honey palette.
var (
	ColorHoney  = lipgloss.Color("#F5B700")
	ColorAmber  = lipgloss.Color("#fe8019")
	ColorLeaf   = lipgloss.Color("#8ec07c")
	ColorSky    = lipgloss.Color("#83a598")
	ColorBerry  = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorAmber
)

var (
	StyleHoney  = lipgloss.NewStyle().Foreground(ColorHoney)
	StyleLeaf   = lipgloss.NewStyle().Foreground(ColorLeaf)
	StyleSky    = lipgloss.NewStyle().Foreground(ColorSky)
	StyleBerry  = lipgloss.NewStyle().Foreground(ColorBerry)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders an upper-cased section title over a rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(strings.Repeat("─", lipgloss.Width(upper))))
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }

func TaskStatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskTodo:
		return StyleSky.Render("○ Todo")
	case domain.TaskInProgress:
		return StyleHoney.Render("◐ Buzzing")
	case domain.TaskDone:
		return StyleLeaf.Render("✔ Done")
	case domain.TaskArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(s))
	}
}

func IntensityBadge(m domain.IntensityMode) string {
	switch m {
	case domain.IntensityGlider:
		return StyleSky.Render("Glider")
	case domain.IntensityHero:
		return StyleBerry.Render("Hero mode")
	default:
		return StyleHoney.Render("Worker bee")
	}
}

// Swatch renders a small block in a project's colour.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
