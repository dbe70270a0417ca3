package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchlist/internal/ui/input/types"
)

type fakeContext struct {
	index int
	total int
	term  string
}

func (c fakeContext) CurrentIndex() int  { return c.index }
func (c fakeContext) TotalItems() int    { return c.total }
func (c fakeContext) SearchTerm() string { return c.term }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewStartsInSearchMode(t *testing.T) {
	h := New("")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Contains(t, h.View(), "ex: apple")
}

func TestTypingEmitsUpdateText(t *testing.T) {
	h := New("")
	ctx := fakeContext{total: 3}

	actions, _ := h.HandleKey(runes("A"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "A"}, actions[0])

	actions, _ = h.HandleKey(runes("p"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "Ap"}, actions[0])
	assert.Equal(t, "Ap", h.Value())
}

func TestSpaceIsTextInSearchMode(t *testing.T) {
	h := New("")
	ctx := fakeContext{total: 3}

	h.HandleKey(runes("apple"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)

	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "apple "}, actions[0])
}

func TestEscClearsInBothModes(t *testing.T) {
	h := New("")
	ctx := fakeContext{total: 3}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.ClearSearchAction{}}, actions)

	h.ChangeMode(types.ModeList, ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.ClearSearchAction{}}, actions)
}

func TestTabSwitchesFocus(t *testing.T) {
	h := New("")
	ctx := fakeContext{total: 3}

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeList, h.CurrentMode())

	// letters no longer reach the field
	actions, _ := h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, "", h.Value())

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestListModeBindings(t *testing.T) {
	h := New("")
	ctx := fakeContext{total: 3}
	h.ChangeMode(types.ModeList, ctx)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Direction: "down"}},
		{"j", runes("j"), types.NavigateAction{Direction: "down"}},
		{"k", runes("k"), types.NavigateAction{Direction: "up"}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, types.NavigateAction{Direction: "pagedown"}},
		{"G", runes("G"), types.NavigateAction{Direction: "end"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, types.ToggleAction{Index: -1}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, types.ToggleAction{Index: -1}},
		{"help", runes("?"), types.ShowHelpAction{}},
		{"quit", runes("q"), types.QuitAction{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestToggleOnEmptyListDoesNothing(t *testing.T) {
	h := New("")
	ctx := fakeContext{total: 0}
	h.ChangeMode(types.ModeList, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions)
}
