// Package ui is the presentation adapter: it renders the message store and
// reacts to its changes, never mutating it directly.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"zanai/zanai/services/api"
	"zanai/zanai/services/token"
	"zanai/zanai/utils/logging"
)

type view int

const (
	viewLogin view = iota
	viewChat
)

// App switches between the login form and the chat screen. A persisted
// token selects the chat view at startup; history only arrives with a fresh
// login, matching the web client.
type App struct {
	client *api.Client
	tokens *token.Store
	theme  uiTheme

	view  view
	login loginModel
	chat  chatModel

	width  int
	height int
}

func NewApp(client *api.Client, tokens *token.Store) App {
	theme := newTheme()
	app := App{
		client: client,
		tokens: tokens,
		theme:  theme,
		view:   viewLogin,
		login:  newLoginModel(theme, client),
	}
	if tok, err := tokens.Load(); err == nil && tok != "" {
		app.chat = newChatModel(theme, client, tok, nil)
		app.view = viewChat
	}
	return app
}

func (a App) Init() tea.Cmd {
	if a.view == viewChat {
		return a.chat.Init()
	}
	return a.login.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.login.width = msg.Width
		a.login.height = msg.Height
		if a.view == viewChat {
			var cmd tea.Cmd
			a.chat, cmd = a.chat.Update(msg)
			return a, cmd
		}
		return a, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyCtrlL:
			if a.view == viewChat {
				return a.logout()
			}
		}
	case loginDoneMsg:
		if msg.err == nil {
			if err := a.tokens.Save(msg.token); err != nil {
				logging.ErrorLogger.Error("persist token", zap.Error(err))
			}
			a.chat = newChatModel(a.theme, a.client, msg.token, msg.history)
			a.view = viewChat
			cmd := a.chat.Init()
			if a.width > 0 {
				var resizeCmd tea.Cmd
				a.chat, resizeCmd = a.chat.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
				cmd = tea.Batch(cmd, resizeCmd)
			}
			return a, cmd
		}
	}

	var cmd tea.Cmd
	if a.view == viewChat {
		a.chat, cmd = a.chat.Update(msg)
	} else {
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

// logout discards the session entirely; only server-side history survives
// into the next login.
func (a App) logout() (tea.Model, tea.Cmd) {
	if err := a.tokens.Clear(); err != nil {
		logging.ErrorLogger.Error("clear token", zap.Error(err))
	}
	a.login = newLoginModel(a.theme, a.client)
	a.login.width = a.width
	a.login.height = a.height
	a.view = viewLogin
	return a, a.login.Init()
}

func (a App) View() string {
	if a.view == viewChat {
		return a.chat.View()
	}
	return a.login.View()
}
