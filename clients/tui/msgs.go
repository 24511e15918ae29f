package tui

import "github.com/dohr-michael/screener/internal/screening"

// PredictionDoneMsg carries the result of one classifier call.
type PredictionDoneMsg struct {
	Outcome screening.Outcome
	Err     error
}
