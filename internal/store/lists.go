package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dukerupert/mercado/internal/model"
)

// ListsKey is where the list collection is kept. The name is shared with
// data written by the browser version of the app.
const ListsKey = "market-lists-v2"

// ListStore persists the whole list collection as one JSON array.
type ListStore struct {
	kv     *KVStore
	logger *slog.Logger
}

func NewListStore(kv *KVStore, logger *slog.Logger) *ListStore {
	return &ListStore{kv: kv, logger: logger}
}

// Load returns the saved lists. A missing, unreadable or malformed value
// means there are no saved lists; it is logged and never returned as an
// error.
func (s *ListStore) Load() []model.List {
	raw, ok, err := s.kv.Get(ListsKey)
	if err != nil {
		s.logger.Warn("load lists", "error", err)
		return []model.List{}
	}
	if !ok || raw == "" {
		return []model.List{}
	}

	var lists []model.List
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		s.logger.Warn("saved lists unreadable, discarding every list", "error", err)
		return []model.List{}
	}
	if lists == nil {
		// "null" decodes without error but is not an array.
		return []model.List{}
	}
	for i := range lists {
		if lists[i].Items == nil {
			lists[i].Items = []model.Item{}
		}
	}
	return lists
}

func (s *ListStore) Save(lists []model.List) error {
	if lists == nil {
		lists = []model.List{}
	}
	data, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("marshal lists: %w", err)
	}
	if err := s.kv.Set(ListsKey, string(data)); err != nil {
		return fmt.Errorf("save lists: %w", err)
	}
	return nil
}

// Clear removes the saved collection entirely.
func (s *ListStore) Clear() error {
	if err := s.kv.Remove(ListsKey); err != nil {
		return fmt.Errorf("clear lists: %w", err)
	}
	return nil
}
