package tui

import "github.com/charmbracelet/lipgloss"

const contentWidth = 80

var (
	accent     = lipgloss.Color("#C967E3")
	accentDeep = lipgloss.Color("#9567E3")
	muted      = lipgloss.Color("#666666")
	warnColor  = lipgloss.Color("#FFB347")
	errColor   = lipgloss.Color("#ff6b6b")

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentDeep).
			Foreground(accent).
			Bold(true).
			Align(lipgloss.Center).
			Width(contentWidth - 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(accentDeep).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(accentDeep).
			Bold(true).
			Width(contentWidth).
			Align(lipgloss.Left)

	selectedTitleStyle = titleStyle.
				Foreground(accent)

	queryStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Width(contentWidth).
			Align(lipgloss.Left)

	plotStyle = lipgloss.NewStyle().
			Width(contentWidth - 4).
			PaddingLeft(2)

	instructStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warnColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true).
			Width(contentWidth)

	confirmStyle = lipgloss.NewStyle().
			Foreground(accentDeep).
			Bold(true).
			Align(lipgloss.Center).
			Width(contentWidth)
)
