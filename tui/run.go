package tui

import (
	"bufio"
	"bytes"
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradelingo/superbear/bus"
	"github.com/tradelingo/superbear/logger"
	"github.com/tradelingo/superbear/widget"
)

// Run wires a mascot widget to the TUI and blocks until the user quits.
// Engine hooks and bus events are forwarded into the bubbletea loop, which
// keeps all UI mutation on the single program goroutine.
func Run(w *widget.Widget, eventBus *bus.Bus) error {
	app := NewApp(w)
	program := tea.NewProgram(app, tea.WithAltScreen())

	logger.Intercept(&logWriter{program: program})
	defer logger.Restore()

	w.SetHooks(widget.Hooks{
		OnStage:    func(s widget.Stage) { program.Send(StageMsg{Stage: s}) },
		OnGreeting: func(text string) { program.Send(GreetingMsg{Text: text}) },
	})

	subs := []string{
		eventBus.Subscribe(bus.EventProcessing, func(_ context.Context, e *bus.Event) {
			var d bus.ProcessingData
			if err := e.ParseData(&d); err == nil {
				program.Send(ProcessingMsg{On: d.Processing})
			}
		}),
		eventBus.Subscribe(bus.EventResponse, func(_ context.Context, e *bus.Event) {
			var d bus.ResponseData
			if err := e.ParseData(&d); err == nil {
				program.Send(ReplyMsg{Text: d.Text})
			}
		}),
		eventBus.Subscribe(bus.EventSendFailed, func(_ context.Context, e *bus.Event) {
			program.Send(ReplyMsg{Text: widget.ApologyReply})
		}),
	}
	defer func() {
		for _, id := range subs {
			eventBus.Unsubscribe(id)
		}
	}()

	_, err := program.Run()
	w.Close()
	return err
}

// logWriter forwards intercepted log output into the TUI, one line per
// message.
type logWriter struct {
	program *tea.Program
}

func (w *logWriter) Write(p []byte) (int, error) {
	scanner := bufio.NewScanner(bytes.NewReader(p))
	for scanner.Scan() {
		w.program.Send(LogLineMsg{Line: scanner.Text()})
	}
	return len(p), nil
}
