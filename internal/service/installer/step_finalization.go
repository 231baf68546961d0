package installer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/secretowatch/internal/config"
)

// FinalizationStep fills defaults and drops values the chosen notifier
// does not use
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return advance
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.Env.Notifier == "" {
		state.Env.Notifier = config.NotifierDesktop
	}
	if state.Env.Notifier != config.NotifierTelegram {
		state.Env.TelegramToken = ""
		state.Env.TelegramChatID = 0
	}
	if state.Env.Debug == "" {
		state.Env.Debug = "0"
	}

	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
