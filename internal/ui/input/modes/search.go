package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/input/types"
)

// SearchMode handles keys while the search field has focus. Keys it does
// not consume are typed into the field.
type SearchMode struct {
	keys types.KeyMap
}

func NewSearchMode(keys types.KeyMap) *SearchMode {
	return &SearchMode{keys: keys}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearSearchAction{}}, true
	case key.Matches(msg, m.keys.ToList):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
	}
	return nil, false
}
