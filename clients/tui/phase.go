package tui

// Phase is the top-level screen. The only transition is Intro to Main.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseMain
)

// Advance moves Intro to Main and reports whether it did. Later calls are
// no-ops.
func (p *Phase) Advance() bool {
	if *p != PhaseIntro {
		return false
	}
	*p = PhaseMain
	return true
}

func (p Phase) String() string {
	if p == PhaseMain {
		return "main"
	}
	return "intro"
}
