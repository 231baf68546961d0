package installer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// URLStep collects the address of the page to watch
type URLStep struct {
	input textinput.Model
	err   error
}

func NewURLStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = "https://www.secreto.site/123456"
	ti.CharLimit = 2048
	ti.Width = 50
	return &URLStep{input: ti}
}

func (s *URLStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *URLStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if err := validateURL(val); err != nil {
			s.err = err
			return s, cmd
		}
		state.Env.URL = val
		return nil, nil
	}
	return s, cmd
}

func (s *URLStep) View(state *InstallState) string {
	view := "Enter the URL of the page to watch:\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || raw == "" {
		return fmt.Errorf("not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}
