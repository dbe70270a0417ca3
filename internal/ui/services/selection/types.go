package selection

import "searchlist/internal/domain"

// State holds selection state. Order keeps tap order; Index maps an item
// ID to its position in Order.
type State struct {
	Order []domain.ListItem
	Index map[int]int
}
