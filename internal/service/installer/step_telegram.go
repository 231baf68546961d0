package installer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/secretowatch/internal/config"
)

func telegramSkipped(state *InstallState) bool {
	return state.Env.Notifier != config.NotifierTelegram
}

// TelegramTokenStep collects the Telegram bot token
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{
		input: ti,
	}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if telegramSkipped(state) {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if token := strings.TrimSpace(s.input.Value()); token != "" {
				state.Env.TelegramToken = token
				return nil, nil
			}
		}
	}
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// TelegramChatStep collects the chat that receives notifications
type TelegramChatStep struct {
	input textinput.Model
	err   error
}

func NewTelegramChatStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.Placeholder = "123456789"
	ti.EchoMode = textinput.EchoNormal

	return &TelegramChatStep{
		input: ti,
	}
}

func (s *TelegramChatStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramChatStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if telegramSkipped(state) {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			id, err := strconv.ParseInt(strings.TrimSpace(s.input.Value()), 10, 64)
			if err != nil {
				s.err = err
				return s, cmd
			}
			state.Env.TelegramChatID = id
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TelegramChatStep) View(state *InstallState) string {
	view := "Enter the Telegram chat ID to notify:\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render("chat ID must be a number") + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
