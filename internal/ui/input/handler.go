package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/input/modes"
	"searchlist/internal/ui/input/types"
)

// DefaultPlaceholder is shown in the empty search field
const DefaultPlaceholder = "ex: apple"

const defaultFieldWidth = 40

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

// New creates a handler whose search field shows placeholder when empty.
// The search field starts focused.
func New(placeholder string) *Handler {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = placeholder
	ti.Width = defaultFieldWidth
	ti.Focus()

	keys := types.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeList] = modes.NewListMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(keys)

	return h
}

// HandleKey routes a key to the current mode. Keys the search mode leaves
// alone go to the text field; an UpdateTextAction is emitted whenever the
// field's value changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.changeMode(changeMode.Mode, ctx)...)
			if h.currentMode == types.ModeSearch {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	if !consumed && h.currentMode == types.ModeSearch {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// Update handles non-keyboard messages for the text field (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// ChangeMode switches focus between the search field and the list
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	h.changeMode(mode, ctx)
	if mode == types.ModeSearch {
		return textinput.Blink
	}
	return nil
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	if mode == types.ModeSearch {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
	return actions
}

// CurrentMode returns the focused mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Keys returns the key bindings
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// Value returns the text in the search field
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetValue replaces the text in the search field
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
}

// ClearText empties the search field
func (h *Handler) ClearText() {
	h.textInput.Reset()
}

// SetWidth limits the rendered width of the search field
func (h *Handler) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	h.textInput.Width = width
}

// View renders the search field
func (h *Handler) View() string {
	return h.textInput.View()
}
