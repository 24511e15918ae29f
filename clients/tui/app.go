package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/screener/clients/tui/components"
	"github.com/dohr-michael/screener/clients/tui/organisms"
	"github.com/dohr-michael/screener/internal/form"
	"github.com/dohr-michael/screener/internal/intro"
	"github.com/dohr-michael/screener/internal/screening"
)

// Options configures the application.
type Options struct {
	Predictor form.Predictor
	Endpoint  string

	// Greetings defaults to intro.Greetings().
	Greetings    []intro.Greeting
	IntroOptions []intro.Option
	SkipIntro    bool
}

// App is the root model. Architecture: INTRO, then FORM or RESULT | STATUS.
type App struct {
	ctx       context.Context
	predictor form.Predictor

	phase  Phase
	intro  *organisms.Intro
	form   organisms.Form
	result *organisms.Result
	status organisms.InformationPanel

	width    int
	height   int
	quitting bool
}

// NewApp creates the application. ctx bounds in-flight predictions.
func NewApp(ctx context.Context, opts Options) *App {
	greetings := opts.Greetings
	if greetings == nil {
		greetings = intro.Greetings()
	}
	seq := intro.New(greetings, opts.IntroOptions...)

	a := &App{
		ctx:       ctx,
		predictor: opts.Predictor,
		intro:     organisms.NewIntro(seq, len(greetings)),
		form:      organisms.NewForm(form.New()),
		status:    organisms.NewInformationPanel(opts.Endpoint, components.StatusBarStyle),
		width:     80,
	}
	if opts.SkipIntro {
		a.phase.Advance()
	}
	return a
}

// Phase returns the current top-level screen.
func (a *App) Phase() Phase {
	return a.phase
}

// Init starts the intro, or focuses the form when it was skipped.
func (a *App) Init() tea.Cmd {
	if a.phase == PhaseMain {
		return a.form.Init()
	}
	return a.intro.Start()
}

// Update handles messages and updates state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			a.intro.Stop()
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case organisms.IntroFrameMsg:
		if a.phase != PhaseIntro {
			return a, nil
		}
		return a, a.intro.Update(msg)

	case organisms.IntroDoneMsg:
		return a, a.enterMain()

	case organisms.SubmitMsg:
		a.status.SetMode(organisms.ModePredicting)
		return a, a.predict(msg.Request)

	case PredictionDoneMsg:
		return a, a.handlePrediction(msg)

	case organisms.ResetMsg:
		a.result = nil
		a.status.SetMode(organisms.ModeEditing)
		return a, a.form.Reset()
	}

	if a.phase != PhaseMain {
		return a, nil
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.phase == PhaseIntro {
		if msg.String() == "esc" {
			return a.enterMain()
		}
		return nil
	}

	if a.result != nil {
		var cmd tea.Cmd
		*a.result, cmd = a.result.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return cmd
}

// enterMain is the single Intro to Main transition.
func (a *App) enterMain() tea.Cmd {
	a.intro.Stop()
	if !a.phase.Advance() {
		return nil
	}
	slog.Debug("intro finished")
	return a.form.Init()
}

func (a *App) predict(req screening.Request) tea.Cmd {
	ctx, p := a.ctx, a.predictor
	return func() tea.Msg {
		outcome, err := p.Predict(ctx, req)
		return PredictionDoneMsg{Outcome: outcome, Err: err}
	}
}

func (a *App) handlePrediction(msg PredictionDoneMsg) tea.Cmd {
	if a.quitting {
		return nil
	}
	a.form.Complete(msg.Outcome, msg.Err)
	a.status.Record(msg.Err)

	outcome, ok := a.form.Controller().Outcome()
	if !ok {
		slog.Warn("prediction failed", "error", msg.Err)
		a.status.SetMode(organisms.ModeEditing)
		return nil
	}
	result := organisms.NewResult(outcome)
	result.SetWidth(a.contentWidth())
	a.result = &result
	a.status.SetMode(organisms.ModeResult)
	return nil
}

func (a *App) contentWidth() int {
	return a.width - AppStyle.GetHorizontalFrameSize()
}

func (a *App) updateSizes() {
	w := a.contentWidth()
	a.intro.SetSize(a.width, a.height)
	a.form.SetWidth(w)
	if a.result != nil {
		a.result.SetWidth(w)
	}
	a.status.SetWidth(a.width)
}

// View renders the active screen.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.phase == PhaseIntro {
		return a.intro.View()
	}

	body := a.form.View()
	if a.result != nil {
		body = a.result.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, AppStyle.Render(body), a.status.View())
}
