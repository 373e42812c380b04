package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	panelStyle    = lipgloss.NewStyle().PaddingLeft(2)
)
