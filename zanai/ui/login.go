package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zanai/zanai/services/api"
	httputils "zanai/zanai/utils/http"
)

const pinLength = 6

type loginDoneMsg struct {
	token   string
	history json.RawMessage
	err     error
}

type loginModel struct {
	theme  uiTheme
	client *api.Client

	input     textinput.Model
	spin      spinner.Model
	errMsg    string
	verifying bool

	width  int
	height int
}

func newLoginModel(theme uiTheme, client *api.Client) loginModel {
	input := textinput.New()
	input.Placeholder = "------"
	input.EchoMode = textinput.EchoPassword
	input.CharLimit = pinLength
	input.Width = pinLength + 2
	input.Validate = validatePinInput
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return loginModel{
		theme:  theme,
		client: client,
		input:  input,
		spin:   spin,
	}
}

// validatePinInput keeps the field numeric while typing; length is checked
// on submit so a partial PIN is never an input error.
func validatePinInput(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.verifying {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			pin := m.input.Value()
			if len(pin) != pinLength {
				m.errMsg = "PIN must be 6 digits."
				return m, nil
			}
			m.errMsg = ""
			m.verifying = true
			return m, tea.Batch(m.spin.Tick, loginCmd(m.client, pin))
		}
	case loginDoneMsg:
		// Success is handled by the app model; only failure lands here.
		m.verifying = false
		m.errMsg = loginErrorText(msg.err)
		return m, nil
	case spinner.TickMsg:
		if m.verifying {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func loginCmd(client *api.Client, pin string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Login(context.Background(), pin)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{token: res.Token, history: res.History}
	}
}

func loginErrorText(err error) string {
	var statusErr *httputils.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Msg != "" {
			return statusErr.Msg
		}
		return "Login failed. Please try again."
	}
	return "An error occurred. Please check your connection or try again later."
}

func (m loginModel) View() string {
	status := m.theme.hint.Render("Enter your 6-digit PIN")
	if m.verifying {
		status = m.spin.View() + " Verifying..."
	} else if m.errMsg != "" {
		status = m.theme.errorText.Render(m.errMsg)
	}

	card := m.theme.card.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.title.Render("ZanAi"),
		"",
		m.theme.pinText.Render(m.input.View()),
		"",
		status,
	))

	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
