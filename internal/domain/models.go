package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two items in a dataset share an ID
var ErrDuplicateID = errors.New("duplicate item id")

// ListItem is a single entry of the searchable dataset
type ListItem struct {
	ID   int    `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
}

// Dataset is the ordered, read-only collection the list is built from
type Dataset []ListItem

// Validate checks that every item ID is unique
func (d Dataset) Validate() error {
	seen := make(map[int]int, len(d))
	for i, item := range d {
		if prev, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %d (items %d and %d)", ErrDuplicateID, item.ID, prev, i)
		}
		seen[item.ID] = i
	}
	return nil
}

// Clone returns a copy so callers can't mutate the component's dataset
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
