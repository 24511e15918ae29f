package atoms

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/screener/clients/tui/components"
)

// StyledLabel renders a field label padded to width, so inputs line up.
func StyledLabel(label string, width int, style lipgloss.Style) string {
	return style.Render(components.PadRight(label, width))
}
