package control

import (
	"errors"
	"slices"

	"health-portal-server/internal/models"
)

var ErrItemNotFound = errors.New("checklist item not found")

// Checklist is a list of items with independent completion flags.
type Checklist struct {
	items []models.PreparationItem
}

// NewChecklist copies items so toggling never touches the fixture data.
func NewChecklist(items []models.PreparationItem) *Checklist {
	return &Checklist{items: slices.Clone(items)}
}

// Toggle flips item i. No other item changes.
func (c *Checklist) Toggle(i int) error {
	if i < 0 || i >= len(c.items) {
		return ErrItemNotFound
	}
	c.items[i].Checked = !c.items[i].Checked
	return nil
}

// Items returns a snapshot of the list.
func (c *Checklist) Items() []models.PreparationItem {
	return slices.Clone(c.items)
}
