package session

import (
	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/model"
)

// AddDraftItem validates and appends an item to the list being composed.
func (s *Session) AddDraftItem(name string, quantity float64, unit model.Unit) (model.Item, error) {
	item, err := market.NewItem(s.stamper.NewID, name, quantity, unit)
	if err != nil {
		return model.Item{}, err
	}
	s.mutate(func() bool {
		s.draft = market.AddItem(s.draft, item)
		return true
	})
	return item, nil
}

func (s *Session) SetDraftName(name string) {
	s.mutate(func() bool {
		if s.draftName == name {
			return false
		}
		s.draftName = name
		return true
	})
}

// FinalizeDraft turns the draft into a list and opens it. An empty draft
// is ignored.
func (s *Session) FinalizeDraft() (model.List, bool) {
	var created model.List
	ok := s.mutate(func() bool {
		lists, list, ok := market.CreateList(s.lists, s.draftName, s.draft, s.stamper)
		if !ok {
			return false
		}
		s.setLists(lists)
		s.mode = model.ModeView
		s.currentID = list.ID
		s.resetDraft()
		created = list
		return true
	})
	return created, ok
}
