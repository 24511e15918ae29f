package atoms

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/dohr-michael/screener/clients/tui/components"
)

// ConfidenceBar draws a static 0..100 bar. It never animates, so it does
// not need Update.
type ConfidenceBar struct {
	bar progress.Model
}

// NewConfidenceBar creates a bar of the given width in cells.
func NewConfidenceBar(width int) ConfidenceBar {
	return ConfidenceBar{bar: progress.New(
		progress.WithSolidFill(components.ColorPrimary),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)}
}

// SetWidth resizes the bar.
func (c *ConfidenceBar) SetWidth(width int) {
	c.bar.Width = width
}

// View renders the bar for a confidence in percent.
func (c ConfidenceBar) View(confidence float64) string {
	return c.bar.ViewAs(confidence / 100)
}
