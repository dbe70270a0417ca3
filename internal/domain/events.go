package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchChanged    EventType = "SearchChanged"
	EventSearchCleared    EventType = "SearchCleared"
	EventSelectionToggled EventType = "SelectionToggled"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchChangedEvent is emitted when the search term changes
type SearchChangedEvent struct {
	Term       string
	MatchCount int
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// SearchClearedEvent is emitted when the clear button resets the term
type SearchClearedEvent struct {
	MatchCount int
}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// SelectionToggledEvent is emitted when a row is tapped
type SelectionToggledEvent struct {
	Item     ListItem
	Selected bool
	Total    int
}

func (e SelectionToggledEvent) Type() EventType { return EventSelectionToggled }

// AppReadyEvent is emitted once the list has been built
type AppReadyEvent struct {
	ItemCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
