package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradelingo/superbear/widget"
)

var (
	bearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // honey
	remarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

const bearArt = "ʕ •ᴥ•ʔ"

// MascotPanel renders the staged mascot reveal: nothing, then the bear,
// then (tutor only) the remark, then the speech bubble with the typewriter
// greeting.
type MascotPanel struct {
	stage    widget.Stage
	remark   string
	greeting string
	width    int
	height   int
}

// NewMascotPanel creates a mascot panel with the variant's remark text.
func NewMascotPanel(remark string) *MascotPanel {
	return &MascotPanel{remark: remark}
}

func (p *MascotPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case StageMsg:
		if msg.Stage > p.stage {
			p.stage = msg.Stage
		}
	case GreetingMsg:
		p.greeting = msg.Text
	}
	return p, nil
}

func (p *MascotPanel) View() string {
	if p.stage == widget.StageInit {
		return ""
	}

	bear := bearStyle.Render(bearArt)
	if p.stage < widget.StageBubble {
		if p.stage == widget.StageRemark && p.remark != "" {
			return lipgloss.JoinVertical(lipgloss.Left, remarkStyle.Render(p.remark), bear)
		}
		return bear
	}

	bubble := bubbleStyle.Render(p.greeting)
	row := lipgloss.JoinHorizontal(lipgloss.Center, bear+" ", bubble)
	if p.remark != "" {
		return lipgloss.JoinVertical(lipgloss.Left, remarkStyle.Render(p.remark), row)
	}
	return row
}

func (p *MascotPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
