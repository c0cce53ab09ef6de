package session

import (
	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/model"
)

// Snapshot is an immutable copy of the session state for displays.
type Snapshot struct {
	Mode          model.Mode      `json:"mode"`
	Theme         model.Theme     `json:"theme"`
	Lists         []model.List    `json:"lists"`
	CurrentListID string          `json:"currentListId,omitempty"`
	Current       *model.List     `json:"current,omitempty"`
	Summary       *market.Summary `json:"summary,omitempty"`
	DraftName     string          `json:"draftName"`
	Draft         []model.Item    `json:"draft"`
	AddingInView  bool            `json:"addingInView"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		Mode:          s.mode,
		Theme:         s.theme,
		Lists:         market.CloneLists(s.lists),
		CurrentListID: s.currentID,
		DraftName:     s.draftName,
		Draft:         market.CloneItems(s.draft),
		AddingInView:  s.addingInView,
	}
	if cur, ok := market.FindList(snap.Lists, s.currentID); ok {
		sum := market.Summarize(cur.Items)
		snap.Current = &cur
		snap.Summary = &sum
	}
	return snap
}

// Lists returns a copy of the collection.
func (s *Session) Lists() []model.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return market.CloneLists(s.lists)
}

// CurrentListID returns the id of the open list, or "" on screens without one.
func (s *Session) CurrentListID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}
