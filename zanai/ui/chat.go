package ui

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zanai/zanai/session"
)

type storeChangedMsg struct{}

type sendDoneMsg struct{}

type chatModel struct {
	theme uiTheme
	store *session.Store
	orch  *session.Orchestrator

	input    textinput.Model
	timeline viewport.Model
	spin     spinner.Model
	sending  bool

	width  int
	height int
	ready  bool
}

func newChatModel(theme uiTheme, sender session.ReplySender, tok string, history json.RawMessage) chatModel {
	store := session.NewStore()
	_ = store.Reset(session.NormalizeHistory(history))
	orch := session.NewOrchestrator(store, sender, tok)

	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return chatModel{
		theme: theme,
		store: store,
		orch:  orch,
		input: input,
		spin:  spin,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.store.Changes()))
}

// waitForChange blocks on the store's change channel and is reissued after
// every notification, so the optimistic insert renders before the network
// call resolves.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

func submitCmd(orch *session.Orchestrator, text string) tea.Cmd {
	return func() tea.Msg {
		orch.Submit(context.Background(), text)
		return sendDoneMsg{}
	}
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			text := m.input.Value()
			if m.sending || strings.TrimSpace(text) == "" {
				return m, nil
			}
			m.input.Reset()
			m.sending = true
			return m, tea.Batch(m.spin.Tick, submitCmd(m.orch, text))
		}
		if m.sending {
			// Input is disabled while a send is in flight.
			return m, nil
		}
	case storeChangedMsg:
		m.renderTimeline()
		m.timeline.GotoBottom()
		return m, waitForChange(m.store.Changes())
	case sendDoneMsg:
		m.sending = false
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if m.sending {
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

func (m *chatModel) resize(width, height int) {
	m.width = width
	m.height = height
	contentHeight := height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	if !m.ready {
		m.timeline = viewport.New(width, contentHeight)
		m.ready = true
	} else {
		m.timeline.Width = width
		m.timeline.Height = contentHeight
	}
	m.input.Width = width - 4
	m.renderTimeline()
	m.timeline.GotoBottom()
}

func (m *chatModel) renderTimeline() {
	if !m.ready {
		return
	}
	m.timeline.SetContent(renderMessages(m.theme, m.store.Messages(), m.timeline.Width))
}

func renderMessages(theme uiTheme, msgs []session.Message, width int) string {
	if width <= 0 {
		width = 80
	}
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 10 {
		bubbleWidth = width
	}
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		style := theme.assistantBubble
		align := lipgloss.Left
		if msg.Sender == session.SenderUser {
			style = theme.userBubble
			align = lipgloss.Right
		}
		if msg.Status == session.StatusFailed {
			style = theme.failedBubble
		}
		text := msg.Text
		if msg.Status == session.StatusPending {
			text += " …"
		}
		bubble := style.MaxWidth(bubbleWidth).Render(text)
		lines = append(lines, lipgloss.PlaceHorizontal(width, align, bubble))
	}
	return strings.Join(lines, "\n")
}

func (m chatModel) View() string {
	header := m.theme.header.Width(m.width).Render("ZanAi Chat")

	var inputLine string
	if m.sending {
		inputLine = m.spin.View() + " Sending..."
	} else {
		inputLine = m.input.View()
	}

	footer := m.theme.footer.Render("enter send · ctrl+l log out · ctrl+c quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.timeline.View(),
		inputLine,
		footer,
	)
}
