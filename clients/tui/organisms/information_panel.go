package organisms

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/screener/clients/tui/components"
)

// InformationPanel is the status bar: classifier endpoint, mode and the
// number of predictions made this session.
type InformationPanel struct {
	endpoint string
	mode     Mode
	count    int
	failures int
	width    int
	style    lipgloss.Style
}

// NewInformationPanel creates a status bar for endpoint.
func NewInformationPanel(endpoint string, style lipgloss.Style) InformationPanel {
	return InformationPanel{endpoint: endpoint, style: style}
}

// SetMode updates the displayed mode.
func (p *InformationPanel) SetMode(mode Mode) { p.mode = mode }

// SetWidth updates the rendering width.
func (p *InformationPanel) SetWidth(w int) { p.width = w }

// Record counts a finished prediction.
func (p *InformationPanel) Record(err error) {
	if err != nil {
		p.failures++
		return
	}
	p.count++
}

// Mode returns the displayed mode.
func (p *InformationPanel) Mode() Mode { return p.mode }

// View renders the status bar.
func (p InformationPanel) View() string {
	stats := fmt.Sprintf("%d done", p.count)
	if p.failures > 0 {
		stats += fmt.Sprintf(" / %d failed", p.failures)
	}
	bar := fmt.Sprintf(" %s | %s | %s ", components.TruncateString(p.endpoint, 48), p.mode, stats)
	if p.width > 0 {
		return p.style.Width(p.width).Render(bar)
	}
	return p.style.Render(bar)
}
