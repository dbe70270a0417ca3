package search

import "searchlist/internal/domain"

// State holds search state
type State struct {
	Term     string
	Results  []domain.ListItem // FilteredView for Term
	computed bool
}
