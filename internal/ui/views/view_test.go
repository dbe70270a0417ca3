package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"searchlist/internal/domain"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Selected", Label(true))
	assert.Equal(t, "Not Selected", Label(false))
}

func TestRenderRowSpaceBetween(t *testing.T) {
	r := NewRenderer()
	row := r.RenderRow(RowState{Item: domain.ListItem{ID: 1, Name: "Apple Jive"}}, 40, true)

	assert.True(t, strings.HasPrefix(strings.TrimLeft(row, " "), "Apple Jive"))
	assert.True(t, strings.HasSuffix(row, "Not Selected"))
	assert.Equal(t, 40, lipgloss.Width(row))
}

func TestRenderRowTruncatesLongNames(t *testing.T) {
	r := NewRenderer()
	long := strings.Repeat("Pineapple ", 20)
	row := r.RenderRow(RowState{Item: domain.ListItem{Name: long}, Selected: true}, 40, true)

	assert.LessOrEqual(t, lipgloss.Width(row), 40)
	assert.Contains(t, row, "…")
	assert.True(t, strings.HasSuffix(row, "Selected"))
}

func TestRenderRowCursorMarker(t *testing.T) {
	r := NewRenderer()
	item := domain.ListItem{Name: "Mango Macarena"}

	assert.Contains(t, r.RenderRow(RowState{Item: item, Cursor: true}, 40, false), "> ")
	assert.NotContains(t, r.RenderRow(RowState{Item: item, Cursor: true}, 40, true), "> ")
}

func TestRenderLayout(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:      60,
		Height:     12,
		SearchView: "ex: apple",
		Rows: []RowState{
			{Item: domain.ListItem{ID: 1, Name: "Apple Jive"}},
			{Item: domain.ListItem{ID: 3, Name: "Pineapple Paradise"}, Selected: true},
		},
		MatchCount:    2,
		Total:         3,
		SelectedCount: 1,
		ListHeight:    6,
		SearchTerm:    "Ap",
		HelpView:      "? help",
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, HeaderLines+6+FooterLines)
	assert.Contains(t, lines[TitleLine], "2/3 · 1 selected")
	assert.Contains(t, lines[SearchLine], "ex: apple")
	assert.Contains(t, lines[ClearLine], ClearButton)
	assert.Contains(t, lines[HeaderLines], "Apple Jive")
	assert.Contains(t, lines[HeaderLines+1], "Pineapple Paradise")
	assert.Contains(t, lines[len(lines)-2], "[Filter: Ap] 2 matches")
	assert.Equal(t, "? help", lines[len(lines)-1])
}

func TestRenderEmptyList(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{Width: 40, ListHeight: 3})

	assert.NotContains(t, out, "Selected")
	assert.Contains(t, out, "0/0")
}
