package ui

import "github.com/charmbracelet/lipgloss"

type uiTheme struct {
	header    lipgloss.Style
	footer    lipgloss.Style
	title     lipgloss.Style
	hint      lipgloss.Style
	errorText lipgloss.Style

	userBubble      lipgloss.Style
	assistantBubble lipgloss.Style
	failedBubble    lipgloss.Style

	card    lipgloss.Style
	pinText lipgloss.Style
}

func newTheme() uiTheme {
	deepBlue := lipgloss.Color("#1e3a8a")
	white := lipgloss.Color("#f8fafc")
	muted := lipgloss.Color("#94a3b8")
	red := lipgloss.Color("#ef4444")
	gray := lipgloss.Color("#374151")

	return uiTheme{
		header: lipgloss.NewStyle().
			Background(deepBlue).
			Foreground(white).
			Bold(true).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		title: lipgloss.NewStyle().
			Foreground(white).
			Bold(true),
		hint:      lipgloss.NewStyle().Foreground(muted),
		errorText: lipgloss.NewStyle().Foreground(red),
		userBubble: lipgloss.NewStyle().
			Background(white).
			Foreground(lipgloss.Color("#1f2937")).
			Padding(0, 1),
		assistantBubble: lipgloss.NewStyle().
			Background(gray).
			Foreground(white).
			Padding(0, 1),
		failedBubble: lipgloss.NewStyle().
			Foreground(white).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(red),
		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(white).
			Padding(1, 3),
		pinText: lipgloss.NewStyle().Foreground(white).Bold(true),
	}
}
