// Package components provides reusable TUI styles and renderers.
package components

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette - Single Source of Truth
// =============================================================================

const (
	// Primary colors
	ColorPrimary   = "#7C3AED" // Violet - headings, focused field
	ColorSecondary = "#10B981" // Green - low risk, success
	ColorAccent    = "#60A5FA" // Blue - labels
	ColorWarning   = "#F59E0B" // Amber - estimated marker
	ColorError     = "#EF4444" // Red - high risk, errors

	// Neutral colors
	ColorMuted      = "#6B7280" // Gray - placeholders, hints
	ColorBorder     = "#374151" // Dark gray - borders
	ColorBackground = "#1F2937" // Dark slate - status bar
	ColorSurface    = "#1E293B" // Slightly lighter - panels

	// Text colors
	ColorText       = "#E5E7EB"
	ColorTextBright = "#FFFFFF"
	ColorTextDim    = "#9CA3AF"
)

var (
	Primary    = lipgloss.Color(ColorPrimary)
	Secondary  = lipgloss.Color(ColorSecondary)
	Accent     = lipgloss.Color(ColorAccent)
	Warning    = lipgloss.Color(ColorWarning)
	Error      = lipgloss.Color(ColorError)
	Muted      = lipgloss.Color(ColorMuted)
	Border     = lipgloss.Color(ColorBorder)
	Surface    = lipgloss.Color(ColorSurface)
	Text       = lipgloss.Color(ColorText)
	TextBright = lipgloss.Color(ColorTextBright)
	TextDim    = lipgloss.Color(ColorTextDim)
)

// =============================================================================
// Intro Styles
// =============================================================================

var (
	// GreetingStyle for the large greeting word
	GreetingStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// LanguageStyle for the language caption under the greeting
	LanguageStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// DotStyle / DotActiveStyle for the position indicator
	DotStyle       = lipgloss.NewStyle().Foreground(Border)
	DotActiveStyle = lipgloss.NewStyle().Foreground(Primary)
)

// =============================================================================
// Form Styles
// =============================================================================

var (
	// TitleStyle for the form title
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// SubtitleStyle for the line under the title
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	// LabelStyle for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// FocusedLabelStyle for the label of the focused field
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	// PlaceholderStyle for input placeholders
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// ButtonStyle / FocusedButtonStyle / DisabledButtonStyle for the submit action
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextBright).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Border).
				Padding(0, 2)

	// ErrorBannerStyle for the inline connection error
	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(Error).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Error).
				Padding(0, 1)

	// ErrorStyle for error text
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// =============================================================================
// Result Styles
// =============================================================================

var (
	// HighRiskStyle / LowRiskStyle for the headline
	HighRiskStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	LowRiskStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// ConfidenceStyle for the percentage
	ConfidenceStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// EstimatedStyle marks a placeholder confidence
	EstimatedStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)

	// HighRiskBoxStyle / LowRiskBoxStyle frame the advice text
	HighRiskBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Error).
				Padding(0, 1)

	LowRiskBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// CardStyle for the result card
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(1, 2)
)

// =============================================================================
// Indicators
// =============================================================================

var (
	// SpinnerStyle for loading spinners
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)

	// HintStyle for keyboard hints
	HintStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// StatusBarStyle for the bottom bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBackground)).
			Foreground(TextDim).
			Padding(0, 1)
)
