// Package tui is the terminal presentation layer for the mascot widget. It
// observes the engine through hooks and bus events; all chat state lives in
// the widget package.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradelingo/superbear/widget"
)

// Panel is a composable TUI region with its own state, update logic, and
// view. The root App model orchestrates panels without knowing their
// internals.
type Panel interface {
	Update(tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// StageMsg carries a mascot reveal transition.
type StageMsg struct{ Stage widget.Stage }

// GreetingMsg carries the typewriter's current greeting prefix.
type GreetingMsg struct{ Text string }

// ReplyMsg carries an assistant reply to display.
type ReplyMsg struct{ Text string }

// ProcessingMsg flips the in-flight indicator.
type ProcessingMsg struct{ On bool }

// InputSubmitMsg is emitted when the user presses Enter in the input panel.
type InputSubmitMsg struct{ Text string }

// LogLineMsg carries a single log line from the logger writer.
type LogLineMsg struct{ Line string }
