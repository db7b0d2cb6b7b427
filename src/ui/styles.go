package ui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Primary lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
}

func defaultPalette() palette {
	return palette{
		Primary: lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"},
		Text:    lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"},
		Muted:   lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"},
		Success: lipgloss.AdaptiveColor{Light: "#14B87A", Dark: "#2ECC71"},
		Error:   lipgloss.AdaptiveColor{Light: "#D94C4C", Dark: "#E74C3C"},
		Warning: lipgloss.AdaptiveColor{Light: "#C7861A", Dark: "#F3A33C"},
	}
}

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	status  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	error   lipgloss.Style
	warning lipgloss.Style
	pane    lipgloss.Style
}

func defaultStyles() styles {
	colors := defaultPalette()
	return styles{
		title: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true).
			Margin(1, 0, 0, 1),

		header: lipgloss.NewStyle().
			Foreground(colors.Text).
			Bold(true).
			Padding(0, 1),

		status: lipgloss.NewStyle().
			Foreground(colors.Text).
			Padding(0, 1),

		muted: lipgloss.NewStyle().
			Foreground(colors.Muted).
			Padding(0, 1),

		success: lipgloss.NewStyle().
			Foreground(colors.Success).
			Bold(true),

		error: lipgloss.NewStyle().
			Foreground(colors.Error).
			Bold(true).
			Padding(0, 1),

		warning: lipgloss.NewStyle().
			Foreground(colors.Warning).
			Bold(true).
			Padding(0, 1),

		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Muted).
			Padding(0, 1).
			Margin(0, 1),
	}
}
