// Package tui is the terminal front end of the screener: a greeting intro
// followed by the screening form and its result view.
package tui

import "github.com/charmbracelet/lipgloss"

// AppStyle pads the whole screen.
var AppStyle = lipgloss.NewStyle().Padding(1, 2)
