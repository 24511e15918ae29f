package organisms

// Mode is what the main screen is doing, as shown in the status bar.
type Mode int

const (
	ModeEditing    Mode = iota
	ModePredicting      // request in flight
	ModeResult          // outcome on display
)

func (m Mode) String() string {
	switch m {
	case ModePredicting:
		return "predicting"
	case ModeResult:
		return "result"
	default:
		return "editing"
	}
}
