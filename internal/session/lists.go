package session

import (
	"fmt"

	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/model"
)

// Duplicate copies a list to the front of the collection.
func (s *Session) Duplicate(id string) (model.List, error) {
	var dup model.List
	var err error
	s.mutate(func() bool {
		var lists []model.List
		lists, dup, err = market.DuplicateList(s.lists, id, s.stamper)
		if err != nil {
			return false
		}
		s.setLists(lists)
		return true
	})
	return dup, err
}

// Delete removes a list. Deleting the open list clears the selection and
// returns to the home screen.
func (s *Session) Delete(id string) bool {
	return s.mutate(func() bool {
		if _, ok := market.FindList(s.lists, id); !ok {
			return false
		}
		s.setLists(market.DeleteList(s.lists, id))
		if s.currentID == id {
			s.currentID = ""
			s.mode = model.ModeHome
		}
		return true
	})
}

// ResetAll drops every list and removes the saved collection.
func (s *Session) ResetAll() {
	s.mutate(func() bool {
		s.lists = market.ResetAll()
		s.dirty = false
		if err := s.repo.Clear(); err != nil {
			s.logger.Warn("saved lists not cleared", "error", err)
		}
		s.mode = model.ModeHome
		s.currentID = ""
		s.resetDraft()
		s.addingInView = false
		return true
	})
}

// Restore replaces the collection, for example from a backup file.
func (s *Session) Restore(lists []model.List) {
	s.mutate(func() bool {
		s.setLists(market.CloneLists(lists))
		s.mode = model.ModeHome
		s.currentID = ""
		s.resetDraft()
		s.addingInView = false
		return true
	})
}

// ExportText renders the list with the given id, or the open list when id
// is empty.
func (s *Session) ExportText(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = s.currentID
	}
	if id == "" {
		return "", ErrNoListSelected
	}
	list, ok := market.FindList(s.lists, id)
	if !ok {
		return "", fmt.Errorf("export %s: %w", id, market.ErrListNotFound)
	}
	return market.ExportText(list, s.loc), nil
}

// ToggleTheme flips between light and dark and saves the preference.
func (s *Session) ToggleTheme() model.Theme {
	var theme model.Theme
	s.mutate(func() bool {
		if s.theme == model.ThemeDark {
			s.theme = model.ThemeLight
		} else {
			s.theme = model.ThemeDark
		}
		if err := s.themes.Set(s.theme); err != nil {
			s.logger.Warn("theme not persisted", "error", err)
		}
		theme = s.theme
		return true
	})
	return theme
}
