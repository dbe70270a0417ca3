package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	inputtypes "searchlist/internal/ui/input/types"
)

// renderHelpContent renders the help information
func renderHelpContent(keys inputtypes.KeyMap, placeholder string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(b *strings.Builder, k, desc string) {
		b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(k), descStyle.Render(desc)))
	}
	binding := func(b *strings.Builder, kb key.Binding) {
		line(b, strings.Join(kb.Keys(), ", "), kb.Help().Desc)
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("searchlist help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search field"))
	help.WriteString("\n")
	line(&help, "typing", fmt.Sprintf("Filter by name, case-insensitive (%q)", placeholder))
	binding(&help, keys.ToList)
	binding(&help, keys.Clear)
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("List"))
	help.WriteString("\n")
	for _, kb := range []key.Binding{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End, keys.Toggle, keys.Search, keys.Clear} {
		binding(&help, kb)
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	line(&help, "click row", "Toggle selection")
	line(&help, "click Clear", "Clear the search")
	line(&help, "wheel", "Scroll")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	binding(&help, keys.Help)
	binding(&help, keys.Quit)

	return help.String()
}

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while ov owns it.
type pagerCommand struct {
	content string
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov talks to the tty directly
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showHelp opens the help pager
func (m *Model) showHelp() tea.Cmd {
	content := renderHelpContent(m.inputHandler.Keys(), m.config.UI.Placeholder)
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
