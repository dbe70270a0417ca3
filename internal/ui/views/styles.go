package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Prompt        lipgloss.Style
	PromptFocused lipgloss.Style
	Button        lipgloss.Style
	Separator     lipgloss.Style
	Help          lipgloss.Style
	Cursor        lipgloss.Style
	SelectionBg   lipgloss.Style
	Selected      lipgloss.Style
	NotSelected   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PromptFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Help:          lipgloss.NewStyle().Faint(true),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		NotSelected:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
