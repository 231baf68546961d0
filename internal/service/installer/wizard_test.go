package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/secretowatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m wizard, s string) wizard {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(wizard)
	}
	return m
}

func press(m wizard, t tea.KeyType) wizard {
	next, _ := m.Update(tea.KeyMsg{Type: t})
	return next.(wizard)
}

// drain feeds nextMsg until the wizard stops on a step waiting for input
// or finishes.
func drain(m wizard, steps int) wizard {
	for i := 0; i < steps && m.pos < len(m.steps); i++ {
		next, _ := m.Update(nextMsg{})
		m = next.(wizard)
	}
	return m
}

func TestWizard_DesktopFlow(t *testing.T) {
	dir := t.TempDir()
	m := newWizard(dir)

	m = typeText(m, "https://example.com/board")
	m = press(m, tea.KeyEnter)
	require.Equal(t, 1, m.pos)
	assert.Equal(t, "https://example.com/board", m.state.Env.URL)

	// desktop is the first choice
	m = press(m, tea.KeyEnter)
	assert.Equal(t, config.NotifierDesktop, m.state.Env.Notifier)

	// telegram steps, finalization and save run without input
	m = drain(m, 10)
	assert.Equal(t, len(m.steps), m.pos)

	require.NotEmpty(t, m.state.EnvPath)
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "SECRETO_URL=https://example.com/board")
	assert.Contains(t, string(data), "SECRETO_NOTIFIER=desktop")
	assert.NotContains(t, string(data), "SECRETO_TELEGRAM_TOKEN")
	assert.Contains(t, string(data), "SECRETO_DEBUG=0")
}

func TestWizard_TelegramFlow(t *testing.T) {
	dir := t.TempDir()
	m := newWizard(dir)

	m = typeText(m, "https://example.com/board")
	m = press(m, tea.KeyEnter)

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyEnter)
	require.Equal(t, config.NotifierTelegram, m.state.Env.Notifier)

	m = typeText(m, "123:abc")
	m = press(m, tea.KeyEnter)
	assert.Equal(t, "123:abc", m.state.Env.TelegramToken)

	m = typeText(m, "not-a-number")
	m = press(m, tea.KeyEnter)
	assert.Zero(t, m.state.Env.TelegramChatID)
	assert.Contains(t, m.View(), "chat ID must be a number")

	for range "not-a-number" {
		m = press(m, tea.KeyBackspace)
	}
	m = typeText(m, "-100500")
	m = press(m, tea.KeyEnter)
	assert.Equal(t, int64(-100500), m.state.Env.TelegramChatID)

	m = drain(m, 10)
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "SECRETO_TELEGRAM_TOKEN=123:abc")
	assert.Contains(t, string(data), "SECRETO_TELEGRAM_CHAT_ID=-100500")
}

func TestURLStep_RejectsInvalidURL(t *testing.T) {
	m := newWizard(t.TempDir())

	m = typeText(m, "ftp://example.com")
	m = press(m, tea.KeyEnter)

	assert.Equal(t, 0, m.pos)
	assert.Empty(t, m.state.Env.URL)
	assert.Contains(t, m.View(), "http://")
}

func TestSaveEnvStep_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SECRETO_URL=x\n"), 0600))

	state := NewInstallState(dir)
	state.Env.URL = "https://example.com"

	step := NewSaveEnvStep()
	next, _ := step.Update(nextMsg{}, state, 0, 0)

	assert.NotNil(t, next)
	assert.Contains(t, step.View(state), "already exists")
	assert.Empty(t, state.EnvPath)
}

func TestWizard_CtrlCCancels(t *testing.T) {
	m := newWizard(t.TempDir())
	m = typeText(m, "https://example.com")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(wizard)

	assert.True(t, m.cancelled)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Installation cancelled.\n", m.View())
	assert.Empty(t, m.state.Env.URL)
}
