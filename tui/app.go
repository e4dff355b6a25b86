package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradelingo/superbear/widget"
)

const mascotHeight = 4

var separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// App is the root bubbletea model that orchestrates panels and layout.
type App struct {
	widget *widget.Widget

	mascotPanel Panel
	chatPanel   Panel
	inputPanel  Panel
	logPanel    Panel

	width, height int
	processing    bool
}

// NewApp creates the root TUI model around one mascot widget.
func NewApp(w *widget.Widget) *App {
	return &App{
		widget:      w,
		mascotPanel: NewMascotPanel(w.Variant().Remark),
		chatPanel:   NewChatPanel(),
		inputPanel:  NewInputPanel(w.Variant().Name + "> "),
		logPanel:    NewLogPanel(),
	}
}

// Init starts the mascot reveal once the program is running.
func (m *App) Init() tea.Cmd {
	return func() tea.Msg {
		m.widget.Reveal()
		return nil
	}
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		p, cmd := m.inputPanel.Update(msg)
		m.inputPanel = p
		cmds = append(cmds, cmd)

	case InputSubmitMsg:
		return m, m.submit(msg.Text)

	case StageMsg, GreetingMsg:
		p, cmd := m.mascotPanel.Update(msg)
		m.mascotPanel = p
		cmds = append(cmds, cmd)

	case ProcessingMsg:
		m.processing = msg.On
		p, cmd := m.chatPanel.Update(msg)
		m.chatPanel = p
		cmds = append(cmds, cmd)

	case ReplyMsg, userEchoMsg, noticeMsg:
		p, cmd := m.chatPanel.Update(msg)
		m.chatPanel = p
		cmds = append(cmds, cmd)

	case LogLineMsg:
		p, cmd := m.logPanel.Update(msg)
		m.logPanel = p
		cmds = append(cmds, cmd)

	default:
		// Everything else (cursor blink, mouse wheel) goes to the input and
		// chat panels.
		p, cmd := m.inputPanel.Update(msg)
		m.inputPanel = p
		cmds = append(cmds, cmd)
		p, cmd = m.chatPanel.Update(msg)
		m.chatPanel = p
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit echoes the draft optimistically and dispatches the send protocol
// on its own goroutine. A draft arriving while a call is in flight gets a
// hint instead of an echo; the engine would reject it anyway.
func (m *App) submit(text string) tea.Cmd {
	if m.processing {
		p, _ := m.chatPanel.Update(noticeMsg{Text: "(still thinking, hold on...)"})
		m.chatPanel = p
		return nil
	}
	p, _ := m.chatPanel.Update(userEchoMsg{Text: text})
	m.chatPanel = p
	return func() tea.Msg {
		m.widget.Send(context.Background(), text)
		return nil
	}
}

func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "waking up the bear..."
	}

	sep := separatorStyle.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.mascotPanel.View(),
		sep,
		m.chatPanel.View(),
		sep,
		m.inputPanel.View(),
		m.logPanel.View(),
	)
}

func (m *App) recalcLayout() {
	const inputH = 1
	const sepLines = 2
	const logH = 4

	chatH := max(m.height-mascotHeight-inputH-sepLines-logH, 2)

	m.mascotPanel.SetSize(m.width, mascotHeight)
	m.chatPanel.SetSize(m.width, chatH)
	m.inputPanel.SetSize(m.width, inputH)
	m.logPanel.SetSize(m.width, logH)
}
