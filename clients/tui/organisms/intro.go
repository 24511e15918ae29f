package organisms

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/screener/clients/tui/components"
	"github.com/dohr-michael/screener/internal/intro"
)

// IntroFrameMsg carries the greeting to display.
type IntroFrameMsg struct {
	Frame intro.Frame
}

// IntroDoneMsg is sent once, when the greeting sequence has finished.
type IntroDoneMsg struct{}

// Intro shows the multilingual greeting sequence. The sequencer calls back
// on its own goroutine; frames are handed to bubbletea through a channel
// sized so those callbacks never block.
type Intro struct {
	seq    *intro.Sequencer
	events chan tea.Msg
	frame  intro.Frame
	shown  bool
	width  int
	height int
}

// NewIntro wraps a sequencer that has not been started.
func NewIntro(seq *intro.Sequencer, frames int) *Intro {
	return &Intro{
		seq:    seq,
		events: make(chan tea.Msg, frames+1),
	}
}

// Start starts the sequencer and returns the command that delivers its
// first event.
func (in *Intro) Start() tea.Cmd {
	events := in.events
	err := in.seq.Start(
		func(f intro.Frame) { events <- IntroFrameMsg{Frame: f} },
		func() { events <- IntroDoneMsg{} },
	)
	if err != nil {
		return nil
	}
	return in.wait()
}

// wait blocks for the next sequencer event. A closed channel ends the loop.
func (in *Intro) wait() tea.Cmd {
	events := in.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// Stop cancels the sequencer. Events already buffered may still arrive;
// callers ignore them once the phase has moved on.
func (in *Intro) Stop() {
	in.seq.Stop()
	if in.events != nil {
		close(in.events)
		in.events = nil
	}
}

// SetSize sets the area the greeting is centred in.
func (in *Intro) SetSize(w, h int) {
	in.width, in.height = w, h
}

// Update records a new frame and keeps listening.
func (in *Intro) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case IntroFrameMsg:
		in.frame = msg.Frame
		in.shown = true
		if in.events == nil {
			return nil
		}
		return in.wait()
	}
	return nil
}

// View renders the current greeting, its language and a position indicator.
func (in *Intro) View() string {
	if !in.shown {
		return ""
	}

	var dots strings.Builder
	for i := 0; i < in.frame.Total; i++ {
		if i == in.frame.Index {
			dots.WriteString(components.DotActiveStyle.Render("●"))
		} else {
			dots.WriteString(components.DotStyle.Render("·"))
		}
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		components.GreetingStyle.Render(in.frame.Text),
		components.LanguageStyle.Render(in.frame.Language),
		"",
		dots.String(),
		"",
		components.HintStyle.Render("esc to skip"),
	)
	if in.width == 0 || in.height == 0 {
		return block
	}
	return lipgloss.Place(in.width, in.height, lipgloss.Center, lipgloss.Center, block)
}
