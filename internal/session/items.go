package session

import (
	"strings"

	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/model"
)

// Commands against the open list. They report whether anything changed.

// AddItem validates and appends an item to the open list, then closes the
// add-item form.
func (s *Session) AddItem(name string, quantity float64, unit model.Unit) (model.Item, error) {
	item, err := market.NewItem(s.stamper.NewID, name, quantity, unit)
	if err != nil {
		return model.Item{}, err
	}

	var added bool
	s.mutate(func() bool {
		if s.currentID == "" {
			return false
		}
		lists, ok := market.UpdateItems(s.lists, s.currentID, func(items []model.Item) []model.Item {
			return market.AddItem(items, item)
		}, s.stamper)
		if !ok {
			return false
		}
		s.setLists(lists)
		s.addingInView = false
		added = true
		return true
	})
	if !added {
		return model.Item{}, ErrNoListSelected
	}
	return item, nil
}

func (s *Session) RemoveItem(id string) bool {
	return s.updateCurrent(func(items []model.Item) []model.Item {
		return market.RemoveItem(items, id)
	})
}

func (s *Session) ToggleAcquired(id string) bool {
	return s.updateCurrent(func(items []model.Item) []model.Item {
		return market.ToggleAcquired(items, id)
	})
}

func (s *Session) SetQuantity(id string, quantity float64) bool {
	return s.updateCurrent(func(items []model.Item) []model.Item {
		return market.SetQuantity(items, id, quantity)
	})
}

func (s *Session) SetUnitPrice(id string, price float64) bool {
	return s.updateCurrent(func(items []model.Item) []model.Item {
		return market.SetUnitPrice(items, id, price)
	})
}

func (s *Session) MarkAllAcquired() bool {
	return s.updateCurrent(market.MarkAllAcquired)
}

func (s *Session) ClearAcquired() bool {
	return s.updateCurrent(market.ClearAcquired)
}

func (s *Session) SortPendingFirst() bool {
	return s.updateCurrent(market.SortPendingFirst)
}

// Rename changes the open list's name.
func (s *Session) Rename(name string) bool {
	return s.mutate(func() bool {
		if s.currentID == "" || strings.TrimSpace(name) == "" {
			return false
		}
		lists, ok := market.RenameList(s.lists, s.currentID, name, s.stamper)
		if ok {
			s.setLists(lists)
		}
		return ok
	})
}
