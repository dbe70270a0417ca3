package selection

import (
	"github.com/rs/zerolog/log"

	"searchlist/internal/domain"
	"searchlist/internal/eventbus"
)

// Service handles selection logic. Membership is keyed by item ID so a
// selection survives filtering and reordering of the visible rows.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{
			Index: make(map[int]int),
		},
		bus: bus,
	}
}

// Toggle adds the item when absent and removes it when present.
// Returns the new selection state of the item.
func (s *Service) Toggle(item domain.ListItem) bool {
	selected := true
	if pos, ok := s.state.Index[item.ID]; ok {
		s.remove(pos)
		selected = false
	} else {
		s.state.Index[item.ID] = len(s.state.Order)
		s.state.Order = append(s.state.Order, item)
	}

	log.Debug().
		Str("component", "selection").
		Int("id", item.ID).
		Bool("selected", selected).
		Int("total", len(s.state.Order)).
		Msg("selection toggled")

	s.bus.Publish(eventbus.SelectionToggledEvent{
		Item:     item,
		Selected: selected,
		Total:    len(s.state.Order),
	})
	return selected
}

// IsSelected checks if an item is selected
func (s *Service) IsSelected(item domain.ListItem) bool {
	return s.IsSelectedID(item.ID)
}

// IsSelectedID checks if the item with id is selected
func (s *Service) IsSelectedID(id int) bool {
	_, ok := s.state.Index[id]
	return ok
}

// Selected returns the selected items in the order they were tapped
func (s *Service) Selected() []domain.ListItem {
	out := make([]domain.ListItem, len(s.state.Order))
	copy(out, s.state.Order)
	return out
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.Order)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Order) > 0
}

func (s *Service) remove(pos int) {
	removed := s.state.Order[pos]
	delete(s.state.Index, removed.ID)

	s.state.Order = append(s.state.Order[:pos], s.state.Order[pos+1:]...)
	for i := pos; i < len(s.state.Order); i++ {
		s.state.Index[s.state.Order[i].ID] = i
	}
}
