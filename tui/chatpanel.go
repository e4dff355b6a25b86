package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradelingo/superbear/mdansi"
)

var (
	userMsgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	thinkingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// userEchoMsg appends the user's own message to the transcript.
type userEchoMsg struct{ Text string }

// noticeMsg appends a dim informational line.
type noticeMsg struct{ Text string }

// ChatPanel displays the conversation in a scrollable viewport pinned to
// its latest content.
type ChatPanel struct {
	viewport viewport.Model
	lines    []string
	thinking bool
}

// NewChatPanel creates a chat panel.
func NewChatPanel() *ChatPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &ChatPanel{viewport: vp}
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case userEchoMsg:
		p.lines = append(p.lines, userMsgStyle.Render("> "+msg.Text))
		p.sync()
		return p, nil
	case ReplyMsg:
		p.lines = append(p.lines, mdansi.Render(msg.Text), "")
		p.sync()
		return p, nil
	case noticeMsg:
		p.lines = append(p.lines, thinkingStyle.Render(msg.Text))
		p.sync()
		return p, nil
	case ProcessingMsg:
		p.thinking = msg.On
		p.sync()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// sync rewrites the viewport content and pins it to the bottom. Safe to
// call on every change.
func (p *ChatPanel) sync() {
	content := strings.Join(p.lines, "\n")
	if p.thinking {
		if content != "" {
			content += "\n"
		}
		content += thinkingStyle.Render("SuperBear is thinking...")
	}
	p.viewport.SetContent(content)
	p.viewport.GotoBottom()
}

func (p *ChatPanel) View() string {
	return p.viewport.View()
}

func (p *ChatPanel) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}
