package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/secretowatch/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

var ErrInterrupted = errors.New("installation interrupted")

// Step is one screen of the setup wizard. Update returns nil once the step
// has written its value into the state.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

func setupSteps() []Step {
	return []Step{
		NewURLStep(),
		NewNotifierStep(),
		NewTelegramTokenStep(),
		NewTelegramChatStep(),
		NewFinalizationStep(),
		NewSaveEnvStep(),
	}
}

type item struct {
	id    string
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }

// nextMsg wakes up a step that does not wait for keyboard input.
type nextMsg struct{}

func advance() tea.Msg { return nextMsg{} }

type wizard struct {
	steps     []Step
	pos       int
	state     *InstallState
	cancelled bool
	width     int
	height    int
}

func newWizard(runtimePath string) wizard {
	return wizard{
		steps: setupSteps(),
		state: NewInstallState(runtimePath),
	}
}

func (w wizard) done() bool {
	return w.pos >= len(w.steps)
}

func (w wizard) Init() tea.Cmd {
	if w.done() {
		return nil
	}
	return w.steps[0].Init()
}

func (w wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			w.cancelled = true
			return w, tea.Quit
		}
	}
	if w.cancelled || w.done() {
		return w, tea.Quit
	}

	step, cmd := w.steps[w.pos].Update(msg, w.state, w.width, w.height)
	if step != nil {
		w.steps[w.pos] = step
		return w, cmd
	}

	w.pos++
	if w.done() {
		return w, tea.Quit
	}
	if cmd := w.steps[w.pos].Init(); cmd != nil {
		return w, cmd
	}
	return w, advance
}

func (w wizard) View() string {
	switch {
	case w.cancelled:
		return "Installation cancelled.\n"
	case w.done():
		return "Configuration complete!\n"
	}
	return titleStyle.Render(fmt.Sprintf("Setting up %s", core.AppName)) + "\n\n" + w.steps[w.pos].View(w.state)
}

// RunWizard asks for the watcher settings and writes them to
// runtimePath/.env.
func RunWizard(runtimePath string) (*InstallState, error) {
	final, err := tea.NewProgram(newWizard(runtimePath), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	w := final.(wizard)
	if w.cancelled || !w.done() {
		return nil, ErrInterrupted
	}
	return w.state, nil
}
