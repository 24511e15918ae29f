package organisms

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/screener/clients/tui/atoms"
	"github.com/dohr-michael/screener/clients/tui/components"
	"github.com/dohr-michael/screener/internal/screening"
)

// ResetMsg asks the coordinator to clear the form and leave the result.
type ResetMsg struct{}

const (
	highRiskAdvice = "Please consult with a **healthcare professional** for proper medical evaluation and advice."
	lowRiskAdvice  = "Your current health parameters suggest a lower risk, but **regular health checkups** are still recommended."
	disclaimer     = "**Disclaimer:** This prediction is for educational purposes only and should not replace professional medical diagnosis."
)

var resetKey = key.NewBinding(
	key.WithKeys("enter", "r"),
	key.WithHelp("enter/r", "make another prediction"),
)

// Result renders an outcome. Its only action is reset.
type Result struct {
	outcome screening.Outcome
	bar     atoms.ConfidenceBar
	width   int
}

// NewResult creates a presenter for outcome.
func NewResult(outcome screening.Outcome) Result {
	return Result{outcome: outcome, bar: atoms.NewConfidenceBar(40), width: 80}
}

// SetWidth sets the rendering width.
func (r *Result) SetWidth(w int) {
	if w <= 0 {
		return
	}
	r.width = w
	bar := w - 12
	if bar > 50 {
		bar = 50
	}
	if bar < 10 {
		bar = 10
	}
	r.bar.SetWidth(bar)
}

// Outcome returns the outcome on display.
func (r Result) Outcome() screening.Outcome {
	return r.outcome
}

// Update emits ResetMsg on enter or r.
func (r Result) Update(msg tea.Msg) (Result, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, resetKey) {
		return r, func() tea.Msg { return ResetMsg{} }
	}
	return r, nil
}

// View renders the result card.
func (r Result) View() string {
	o := r.outcome
	icon, headline, box, advice := "✓", components.LowRiskStyle, components.LowRiskBoxStyle, lowRiskAdvice
	if o.Positive {
		icon, headline, box, advice = "⚠", components.HighRiskStyle, components.HighRiskBoxStyle, highRiskAdvice
	}

	inner := r.width - 8
	if inner < 30 {
		inner = 30
	}

	var sb strings.Builder
	sb.WriteString(headline.Render(icon + "  " + o.Headline()))
	sb.WriteString("\n")
	sb.WriteString(components.SubtitleStyle.Render("Based on the provided health parameters"))
	sb.WriteString("\n\n")

	sb.WriteString(components.SubtitleStyle.Render("Confidence Level"))
	sb.WriteString("\n")
	sb.WriteString(components.ConfidenceStyle.Render(components.FormatPercent(o.Confidence)))
	if o.Estimated {
		sb.WriteString(" ")
		sb.WriteString(components.EstimatedStyle.Render("(estimated)"))
	}
	sb.WriteString("\n")
	sb.WriteString(r.bar.View(o.Confidence))
	sb.WriteString("\n\n")

	sb.WriteString(box.Width(inner).Render(components.RenderMarkdown(advice, inner-4)))
	sb.WriteString("\n\n")

	sb.WriteString(components.FocusedButtonStyle.Render("Make Another Prediction"))
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render(components.RenderMarkdown(disclaimer, inner)))
	sb.WriteString("\n")
	sb.WriteString(components.HintStyle.Render(resetKey.Help().Key + " " + resetKey.Help().Desc + " • ctrl+c quit"))

	return components.CardStyle.Render(lipgloss.NewStyle().Width(inner).Render(sb.String()))
}
