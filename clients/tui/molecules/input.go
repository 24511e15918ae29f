// Package molecules provides mid-level TUI components.
package molecules

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/screener/clients/tui/atoms"
	"github.com/dohr-michael/screener/clients/tui/components"
	"github.com/dohr-michael/screener/internal/screening"
)

// LabelWidth fits the longest field label.
const LabelWidth = 28

// FieldInput is one labelled single-line input bound to a screening field.
type FieldInput struct {
	field screening.Field
	input textinput.Model
}

// NewFieldInput creates an unfocused input showing the field's placeholder.
func NewFieldInput(f screening.Field) FieldInput {
	ti := textinput.New()
	ti.Placeholder = f.Placeholder()
	ti.PlaceholderStyle = components.PlaceholderStyle
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 24
	return FieldInput{field: f, input: ti}
}

// Field returns the bound field.
func (fi *FieldInput) Field() screening.Field {
	return fi.field
}

// Focus gives focus to the input.
func (fi *FieldInput) Focus() tea.Cmd {
	return fi.input.Focus()
}

// Blur removes focus from the input.
func (fi *FieldInput) Blur() {
	fi.input.Blur()
}

// Focused reports whether the input has focus.
func (fi *FieldInput) Focused() bool {
	return fi.input.Focused()
}

// Value returns the raw text.
func (fi *FieldInput) Value() string {
	return fi.input.Value()
}

// SetValue replaces the text.
func (fi *FieldInput) SetValue(v string) {
	fi.input.SetValue(v)
}

// Update forwards key events to the text input.
func (fi FieldInput) Update(msg tea.Msg) (FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	fi.input, cmd = fi.input.Update(msg)
	return fi, cmd
}

// View renders "Label  [input]".
func (fi FieldInput) View() string {
	style := components.LabelStyle
	marker := "  "
	if fi.input.Focused() {
		style = components.FocusedLabelStyle
		marker = components.FocusedLabelStyle.Render("› ")
	}
	return marker + atoms.StyledLabel(fi.field.Label(), LabelWidth, style) + fi.input.View()
}
