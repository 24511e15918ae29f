package organisms

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/screener/clients/tui/atoms"
	"github.com/dohr-michael/screener/clients/tui/components"
	"github.com/dohr-michael/screener/clients/tui/molecules"
	"github.com/dohr-michael/screener/internal/form"
	"github.com/dohr-michael/screener/internal/screening"
)

// SubmitMsg is sent when the form has entered loading and the request
// should be sent.
type SubmitMsg struct {
	Request screening.Request
}

// Form is the data-entry panel: eight inputs and the Predict button. The
// wrapped controller is the source of truth; the inputs mirror it.
type Form struct {
	ctrl    *form.Controller
	inputs  []molecules.FieldInput
	focus   int // len(inputs) is the button
	invalid bool
	spinner atoms.Spinner
	help    help.Model
	keys    molecules.KeyMap
	width   int
}

// NewForm creates a form over ctrl with the first field focused.
func NewForm(ctrl *form.Controller) Form {
	f := Form{
		ctrl:    ctrl,
		spinner: atoms.NewSpinner(components.SpinnerStyle),
		help:    help.New(),
		keys:    molecules.DefaultKeyMap,
	}
	for _, field := range screening.Fields() {
		f.inputs = append(f.inputs, molecules.NewFieldInput(field))
	}
	f.inputs[0].Focus()
	return f
}

// Controller returns the wrapped controller.
func (f *Form) Controller() *form.Controller {
	return f.ctrl
}

// Focused returns the focused position; len(fields) is the button.
func (f *Form) Focused() int {
	return f.focus
}

// SetWidth sets the rendering width.
func (f *Form) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// Init returns the cursor blink command of the focused input.
func (f Form) Init() tea.Cmd {
	return f.inputs[f.focus].Focus()
}

// Complete ends the running submission.
func (f *Form) Complete(outcome screening.Outcome, err error) {
	f.invalid = false
	f.ctrl.Complete(outcome, err)
}

// Reset clears the controller and every input and focuses the first field.
func (f *Form) Reset() tea.Cmd {
	f.ctrl.Reset()
	f.invalid = false
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	return f.setFocus(0)
}

// Update handles navigation, editing and submission.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.ctrl.Loading() {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	if f.focus < len(f.inputs) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) handleKey(msg tea.KeyMsg) (Form, tea.Cmd) {
	switch {
	case key.Matches(msg, f.keys.Next):
		cmd := f.setFocus((f.focus + 1) % (len(f.inputs) + 1))
		return f, cmd

	case key.Matches(msg, f.keys.Prev):
		cmd := f.setFocus((f.focus + len(f.inputs)) % (len(f.inputs) + 1))
		return f, cmd

	case key.Matches(msg, f.keys.Reset):
		if f.ctrl.Loading() {
			return f, nil
		}
		cmd := f.Reset()
		return f, cmd

	case key.Matches(msg, f.keys.Submit):
		if f.focus < len(f.inputs)-1 {
			cmd := f.setFocus(f.focus + 1)
			return f, cmd
		}
		return f.submit()
	}

	if f.focus >= len(f.inputs) || f.ctrl.Loading() {
		return f, nil
	}
	in := &f.inputs[f.focus]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	f.ctrl.SetField(in.Field(), in.Value())
	return f, cmd
}

func (f *Form) setFocus(i int) tea.Cmd {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = i
	if i < len(f.inputs) {
		return f.inputs[i].Focus()
	}
	return nil
}

func (f Form) submit() (Form, tea.Cmd) {
	if !f.ctrl.CanSubmit() {
		return f, nil
	}
	req, err := f.ctrl.Begin()
	if err != nil {
		var invalid *screening.InvalidInputError
		f.invalid = errors.As(err, &invalid)
		return f, nil
	}
	f.invalid = false
	return f, tea.Batch(
		f.spinner.Tick(),
		func() tea.Msg { return SubmitMsg{Request: req} },
	)
}

// View renders the title, the inputs, the button, any error and the key help.
func (f Form) View() string {
	var sb strings.Builder

	sb.WriteString(components.TitleStyle.Render("Diabetes Risk Screening"))
	sb.WriteString("\n")
	sb.WriteString(components.SubtitleStyle.Render("Enter your health parameters to estimate your risk"))
	sb.WriteString("\n\n")

	for _, in := range f.inputs {
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(f.buttonView())
	sb.WriteString("\n")

	if msg := f.ctrl.Err(); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(f.errorView(msg))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(f.help.View(f.keys))
	return sb.String()
}

func (f Form) buttonView() string {
	if f.ctrl.Loading() {
		return components.DisabledButtonStyle.Render(f.spinner.View() + " Predicting...")
	}
	style := components.ButtonStyle
	switch {
	case !f.ctrl.CanSubmit():
		style = components.DisabledButtonStyle
	case f.focus == len(f.inputs):
		style = components.FocusedButtonStyle
	}
	return style.Render("Predict")
}

func (f Form) errorView(msg string) string {
	body := msg
	if !f.invalid {
		body = components.ErrorStyle.Render("Connection Error:") + " " + msg
	}
	width := f.width - 2
	if width < 20 {
		width = 60
	}
	return components.ErrorBannerStyle.Render(lipgloss.NewStyle().Width(width).Render(body))
}
