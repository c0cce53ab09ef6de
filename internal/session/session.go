package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/model"
)

var ErrNoListSelected = errors.New("no list selected")

// ListRepository is the durable home of the list collection.
type ListRepository interface {
	Load() []model.List
	Save(lists []model.List) error
	Clear() error
}

type ThemeRepository interface {
	Get() model.Theme
	Set(t model.Theme) error
}

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	Stamper  market.Stamper
	Location *time.Location
	Logger   *slog.Logger
	// OnChange receives a snapshot after every state change. It runs after
	// the session lock is released.
	OnChange func(Snapshot)
}

// Session is the single-user application state: the list collection, which
// list is open, the draft being composed and the screen mode. Commands run
// one at a time; each one that changes state saves the lists and notifies
// OnChange.
type Session struct {
	mu sync.Mutex

	repo     ListRepository
	themes   ThemeRepository
	stamper  market.Stamper
	loc      *time.Location
	logger   *slog.Logger
	onChange func(Snapshot)

	mode         model.Mode
	lists        []model.List
	currentID    string
	draft        []model.Item
	draftName    string
	addingInView bool
	theme        model.Theme

	dirty bool
}

// New builds a session and loads saved lists and the theme preference.
func New(repo ListRepository, themes ThemeRepository, opts Options) *Session {
	s := &Session{
		repo:     repo,
		themes:   themes,
		stamper:  opts.Stamper,
		loc:      opts.Location,
		logger:   opts.Logger,
		onChange: opts.OnChange,
		mode:     model.ModeHome,
		draft:    []model.Item{},
	}
	if s.stamper.NewID == nil || s.stamper.Now == nil {
		s.stamper = market.DefaultStamper()
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.lists = repo.Load()
	s.theme = themes.Get()
	s.logger.Debug("session loaded", "lists", len(s.lists), "theme", s.theme)
	return s
}

// mutate runs fn under the lock. When fn reports a change, modified lists
// are saved and observers get the new snapshot.
func (s *Session) mutate(fn func() bool) bool {
	s.mu.Lock()
	changed := fn()
	var snap Snapshot
	if changed {
		if s.dirty {
			s.persist()
		}
		snap = s.snapshot()
	}
	s.mu.Unlock()

	if changed && s.onChange != nil {
		s.onChange(snap)
	}
	return changed
}

func (s *Session) setLists(lists []model.List) {
	s.lists = lists
	s.dirty = true
}

// persist saves the collection. A failed write keeps the change in memory
// only.
func (s *Session) persist() {
	s.dirty = false
	if err := s.repo.Save(s.lists); err != nil {
		s.logger.Warn("lists not persisted", "error", err)
	}
}

// updateCurrent applies an item transformation to the open list.
func (s *Session) updateCurrent(fn func([]model.Item) []model.Item) bool {
	return s.mutate(func() bool {
		if s.currentID == "" {
			return false
		}
		lists, ok := market.UpdateItems(s.lists, s.currentID, fn, s.stamper)
		if ok {
			s.setLists(lists)
		}
		return ok
	})
}
