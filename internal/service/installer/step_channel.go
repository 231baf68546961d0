package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/secretowatch/internal/config"
)

// NotifierStep selects how new messages are reported
type NotifierStep struct {
	choices []item
	cursor  int
}

func NewNotifierStep() Step {
	return &NotifierStep{
		choices: []item{
			{id: config.NotifierDesktop, title: "Desktop", desc: "system notification popup"},
			{id: config.NotifierTelegram, title: "Telegram", desc: "message from your own bot"},
			{id: config.NotifierLog, title: "Log", desc: "print to the terminal only"},
		},
	}
}

func (s *NotifierStep) Init() tea.Cmd {
	return nil
}

func (s *NotifierStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Env.Notifier = s.choices[s.cursor].id
			return nil, nil
		}
	}
	return s, nil
}

func (s *NotifierStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("How should new messages be reported?\n\n")
	for i, choice := range s.choices {
		line := fmt.Sprintf("%s - %s", choice.Title(), choice.Description())
		if s.cursor == i {
			b.WriteString(selStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
