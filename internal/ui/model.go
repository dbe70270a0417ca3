package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"searchlist/internal/config"
	"searchlist/internal/domain"
	"searchlist/internal/eventbus"
	"searchlist/internal/ui/input"
	inputtypes "searchlist/internal/ui/input/types"
	"searchlist/internal/ui/services/navigation"
	"searchlist/internal/ui/services/search"
	"searchlist/internal/ui/services/selection"
	"searchlist/internal/ui/views"
)

// wheelStep is how many rows one mouse wheel notch scrolls
const wheelStep = 3

// statusTTL is how long transient status messages stay on screen
const statusTTL = 3 * time.Second

// Model is the searchable, selectable list. The search term and the
// selection are independent; the visible rows are always derived from
// the dataset and the term.
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	dataset domain.Dataset

	search    *search.Service
	selection *selection.Service
	navigator *navigation.Service

	inputHandler *input.Handler
	renderer     *views.Renderer
	help         help.Model

	width         int
	height        int
	statusMessage string
	statusSeq     int
}

// NewModel creates the list over a dataset. The dataset is copied and
// never modified.
func NewModel(bus eventbus.EventBus, cfg *config.Config, dataset domain.Dataset) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		dataset:      dataset.Clone(),
		selection:    selection.NewService(bus),
		inputHandler: input.New(cfg.UI.Placeholder),
		renderer:     views.NewRenderer(),
		help:         help.New(),
	}
	m.search = search.NewService(bus, m.dataset)
	m.navigator = navigation.NewService(m.search.MatchCount)

	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.bus.Publish(eventbus.AppReadyEvent{ItemCount: len(m.dataset)})
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(msg.Width - lipgloss.Width("Search: ") - 1)
		m.navigator.SetViewportHeight(m.listHeight())
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Str("component", "ui").Msg("help pager failed")
			return m, m.setStatus(fmt.Sprintf("Help unavailable: %v", msg.err))
		}
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the component
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}

// processAction applies an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ScrollAction:
		m.navigator.ScrollBy(a.Delta)

	case inputtypes.ToggleAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.Cursor()
		}
		m.toggleIndex(index)

	case inputtypes.UpdateTextAction:
		m.applySearch(a.Text)

	case inputtypes.ClearSearchAction:
		m.PressClear()

	case inputtypes.ShowHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Warn().Str("component", "ui").Str("action", action.Type()).Msg("unhandled action")
	}
	return nil
}

// handleMouse maps clicks and wheel events onto the same operations the
// keyboard triggers. A left click on a row is a tap.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.processAction(inputtypes.ScrollAction{Delta: -wheelStep})
	case tea.MouseButtonWheelDown:
		return m.processAction(inputtypes.ScrollAction{Delta: wheelStep})
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch {
	case msg.Y == views.SearchLine:
		return m.inputHandler.ChangeMode(inputtypes.ModeSearch, m)

	case msg.Y == views.ClearLine:
		if msg.X < lipgloss.Width(views.ClearButton) {
			m.PressClear()
		}

	case msg.Y >= views.HeaderLines && msg.Y < views.HeaderLines+m.listHeight():
		from, to := m.navigator.VisibleRange()
		index := from + msg.Y - views.HeaderLines
		if index >= to {
			return nil
		}
		m.navigator.MoveToIndex(index)
		m.toggleIndex(index)
		return m.inputHandler.ChangeMode(inputtypes.ModeList, m)
	}
	return nil
}

// SetSearchText replaces the search field contents, as if typed
func (m *Model) SetSearchText(text string) {
	m.inputHandler.SetValue(text)
	m.applySearch(text)
}

// PressClear empties the search field
func (m *Model) PressClear() {
	m.inputHandler.ClearText()
	m.search.Clear()
	m.navigator.Reset()
}

// Tap toggles the selection of the row showing the item with id. Only
// rows in the filtered view can be tapped; it reports whether one was.
func (m *Model) Tap(id int) bool {
	index := m.search.IndexOf(id)
	if index < 0 {
		return false
	}
	m.navigator.MoveToIndex(index)
	m.toggleIndex(index)
	return true
}

// SearchTerm returns the current search term
func (m *Model) SearchTerm() string {
	return m.search.Term()
}

// Filtered returns the rows currently matching the search term
func (m *Model) Filtered() []domain.ListItem {
	results := m.search.Results()
	out := make([]domain.ListItem, len(results))
	copy(out, results)
	return out
}

// IsSelected reports whether the item with id is selected
func (m *Model) IsSelected(id int) bool {
	return m.selection.IsSelectedID(id)
}

// Selected returns the selected items in tap order
func (m *Model) Selected() []domain.ListItem {
	return m.selection.Selected()
}

// RowLabel returns the selection label of a row in the filtered view
func (m *Model) RowLabel(id int) (string, bool) {
	if m.search.IndexOf(id) < 0 {
		return "", false
	}
	return views.Label(m.selection.IsSelectedID(id)), true
}

// Focus returns which part of the component has keyboard focus
func (m *Model) Focus() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// VisibleRows returns only the rows inside the scroll window
func (m *Model) VisibleRows() []views.RowState {
	from, to := m.navigator.VisibleRange()
	rows := make([]views.RowState, 0, to-from)
	for i := from; i < to; i++ {
		item, _ := m.search.At(i)
		rows = append(rows, views.RowState{
			Item:     item,
			Selected: m.selection.IsSelected(item),
			Cursor:   i == m.navigator.Cursor(),
		})
	}
	return rows
}

// CurrentIndex implements the input context
func (m *Model) CurrentIndex() int {
	return m.navigator.Cursor()
}

// TotalItems implements the input context
func (m *Model) TotalItems() int {
	return m.search.MatchCount()
}

func (m *Model) applySearch(text string) {
	if text == m.search.Term() {
		return
	}
	m.search.SetTerm(text)
	m.navigator.Reset()
	m.navigator.Sync()
}

func (m *Model) toggleIndex(index int) {
	item, ok := m.search.At(index)
	if !ok {
		return
	}
	m.selection.Toggle(item)
}

func (m *Model) listHeight() int {
	if m.height <= 0 {
		return m.navigator.ViewportHeight()
	}
	h := m.height - views.HeaderLines - views.FooterLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.statusMessage = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m *Model) viewState() views.ViewState {
	rows := m.VisibleRows()
	from, _ := m.navigator.VisibleRange()

	helpView := ""
	if m.config.UI.ShowHelp {
		keys := m.inputHandler.Keys()
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			helpView = m.help.ShortHelpView(keys.SearchHelp())
		} else {
			helpView = m.help.View(keys)
		}
	}

	listHeight := m.listHeight()
	if m.height <= 0 {
		// no size yet: draw just the rows we have
		listHeight = len(rows)
	}

	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		SearchView:    m.inputHandler.View(),
		SearchFocused: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		SearchTerm:    m.search.Term(),
		Rows:          rows,
		FirstRow:      from,
		MatchCount:    m.search.MatchCount(),
		Total:         m.search.Total(),
		SelectedCount: m.selection.Count(),
		ListHeight:    listHeight,
		HelpView:      helpView,
		StatusMessage: m.statusMessage,
	}
}
