package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// tokenStyles colors a tokenize command's human-readable output by
// token category, the way gomdlint's internal/ui/pretty styles lint
// output.
type tokenStyles struct {
	container lipgloss.Style
	leaf      lipgloss.Style
	inline    lipgloss.Style
	dim       lipgloss.Style
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func newTokenStyles(mode string) tokenStyles {
	if !colorEnabled(mode) {
		return tokenStyles{
			container: lipgloss.NewStyle(),
			leaf:      lipgloss.NewStyle(),
			inline:    lipgloss.NewStyle(),
			dim:       lipgloss.NewStyle(),
		}
	}
	return tokenStyles{
		container: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		leaf:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		inline:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
