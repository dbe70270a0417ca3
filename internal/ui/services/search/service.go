package search

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"searchlist/internal/domain"
	"searchlist/internal/eventbus"
)

// Filter returns the items whose lowercased name contains the lowercased
// term.
// An empty term matches every item. Dataset order is preserved.
func Filter(items []domain.ListItem, term string) []domain.ListItem {
	out := make([]domain.ListItem, 0, len(items))
	if term == "" {
		return append(out, items...)
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(term)
	for _, item := range items {
		if strings.Contains(lower.String(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Service owns the search term and the filtered view derived from it
type Service struct {
	state   *State
	bus     eventbus.EventBus
	dataset domain.Dataset
}

// NewService creates a new search service over a fixed dataset
func NewService(bus eventbus.EventBus, dataset domain.Dataset) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	s := &Service{
		state:   &State{},
		bus:     bus,
		dataset: dataset,
	}
	s.recompute()
	return s
}

// SetTerm replaces the search term. The filtered view is only rebuilt
// when the term actually changed.
func (s *Service) SetTerm(term string) {
	if term == s.state.Term && s.state.computed {
		return
	}

	s.state.Term = term
	s.recompute()

	s.bus.Publish(eventbus.SearchChangedEvent{
		Term:       term,
		MatchCount: len(s.state.Results),
	})
}

// Clear resets the term to empty, same as the user erasing the field
func (s *Service) Clear() {
	if s.state.Term != "" {
		s.state.Term = ""
		s.recompute()
	}

	s.bus.Publish(eventbus.SearchClearedEvent{MatchCount: len(s.state.Results)})
}

// Term returns the current search term
func (s *Service) Term() string {
	return s.state.Term
}

// Results returns the filtered view. Callers must not modify it.
func (s *Service) Results() []domain.ListItem {
	return s.state.Results
}

// MatchCount returns the number of items in the filtered view
func (s *Service) MatchCount() int {
	return len(s.state.Results)
}

// Total returns the size of the underlying dataset
func (s *Service) Total() int {
	return len(s.dataset)
}

// At returns the filtered item at index
func (s *Service) At(index int) (domain.ListItem, bool) {
	if index < 0 || index >= len(s.state.Results) {
		return domain.ListItem{}, false
	}
	return s.state.Results[index], true
}

// IndexOf returns the position of the item with id in the filtered view, or -1
func (s *Service) IndexOf(id int) int {
	for i, item := range s.state.Results {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) recompute() {
	s.state.Results = Filter(s.dataset, s.state.Term)
	s.state.computed = true

	log.Debug().
		Str("component", "search").
		Str("term", s.state.Term).
		Int("matches", len(s.state.Results)).
		Msg("filtered view recomputed")
}
