package session

import "github.com/dukerupert/mercado/internal/model"

func (s *Session) GoHome() {
	s.mutate(func() bool {
		s.mode = model.ModeHome
		s.currentID = ""
		s.resetDraft()
		s.addingInView = false
		return true
	})
}

// GoCreate opens the create screen with an empty draft.
func (s *Session) GoCreate() {
	s.mutate(func() bool {
		s.mode = model.ModeCreate
		s.currentID = ""
		s.resetDraft()
		s.addingInView = false
		return true
	})
}

// GoView opens a list. An unknown id still switches screens; the display
// shows the list as missing.
func (s *Session) GoView(id string) {
	s.open(model.ModeView, id)
}

func (s *Session) GoEdit(id string) {
	s.open(model.ModeEdit, id)
}

func (s *Session) open(mode model.Mode, id string) {
	s.mutate(func() bool {
		s.mode = mode
		s.currentID = id
		s.draft = []model.Item{}
		s.addingInView = false
		return true
	})
}

// SetAddingItem shows or hides the add-item form on the view screen.
func (s *Session) SetAddingItem(open bool) {
	s.mutate(func() bool {
		if s.addingInView == open {
			return false
		}
		s.addingInView = open
		return true
	})
}

func (s *Session) resetDraft() {
	s.draft = []model.Item{}
	s.draftName = ""
}
