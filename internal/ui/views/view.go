package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"searchlist/internal/domain"
)

// Row labels
const (
	LabelSelected    = "Selected"
	LabelNotSelected = "Not Selected"
)

// ClearButton is the text of the clear button
const ClearButton = "[ Clear ]"

// Screen layout. Mouse hit-testing in the model relies on these.
const (
	TitleLine   = 0
	SearchLine  = 1
	ClearLine   = 2
	HeaderLines = 4 // title, search, clear, separator
	FooterLines = 2 // status, help
)

const defaultWidth = 80

// Label returns the selection label for a row
func Label(selected bool) string {
	if selected {
		return LabelSelected
	}
	return LabelNotSelected
}

// RowState is everything needed to draw one list row
type RowState struct {
	Item     domain.ListItem
	Selected bool
	Cursor   bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	SearchView    string
	SearchFocused bool
	SearchTerm    string
	Rows          []RowState // only the rows inside the visible window
	FirstRow      int
	MatchCount    int
	Total         int
	SelectedCount int
	ListHeight    int
	HelpView      string
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}

	lines := make([]string, 0, HeaderLines+state.ListHeight+FooterLines)
	lines = append(lines, r.renderTitle(state, width))
	lines = append(lines, r.renderSearch(state))
	lines = append(lines, r.styles.Button.Render(ClearButton))
	lines = append(lines, r.styles.Separator.Render(strings.Repeat("─", width)))

	for _, row := range state.Rows {
		lines = append(lines, r.RenderRow(row, width, state.SearchFocused))
	}
	for i := len(state.Rows); i < state.ListHeight; i++ {
		lines = append(lines, "")
	}

	lines = append(lines, r.renderStatus(state))
	lines = append(lines, r.styles.Help.Render(state.HelpView))

	return strings.Join(lines, "\n")
}

// RenderRow draws a row as name on the left and selection label on the right
func (r *Renderer) RenderRow(row RowState, width int, searchFocused bool) string {
	if width <= 0 {
		width = defaultWidth
	}

	marker := "  "
	if row.Cursor && !searchFocused {
		marker = r.styles.Cursor.Render("> ")
	}

	label := Label(row.Selected)
	labelStyle := r.styles.NotSelected
	if row.Selected {
		labelStyle = r.styles.Selected
	}

	nameWidth := width - lipgloss.Width(marker) - len(LabelNotSelected) - 1
	if nameWidth < 1 {
		nameWidth = 1
	}
	name := ansi.Truncate(row.Item.Name, nameWidth, "…")

	gap := width - lipgloss.Width(marker) - lipgloss.Width(name) - len(label)
	if gap < 1 {
		gap = 1
	}

	line := marker + name + strings.Repeat(" ", gap) + labelStyle.Render(label)
	if row.Cursor && !searchFocused {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("searchlist")

	right := fmt.Sprintf("%d/%d", state.MatchCount, state.Total)
	if state.SelectedCount > 0 {
		right = fmt.Sprintf("%s · %d selected", right, state.SelectedCount)
	}
	right = r.styles.Dim.Render(right)

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearch(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")
	if state.SearchFocused {
		prompt = r.styles.PromptFocused.Render("Search: ")
	}
	return prompt + state.SearchView
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}
	if state.SearchTerm == "" || state.Total == 0 {
		return ""
	}
	return r.styles.Filter.Render(fmt.Sprintf("[Filter: %s] %d matches", state.SearchTerm, state.MatchCount))
}
