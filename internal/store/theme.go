package store

import (
	"fmt"

	"github.com/dukerupert/mercado/internal/model"
)

const ThemeKey = "market-app-theme"

type ThemeStore struct {
	kv       *KVStore
	fallback model.Theme
}

// NewThemeStore returns a store that reports fallback when nothing valid
// has been saved.
func NewThemeStore(kv *KVStore, fallback model.Theme) *ThemeStore {
	if !fallback.Valid() {
		fallback = model.ThemeDark
	}
	return &ThemeStore{kv: kv, fallback: fallback}
}

func (s *ThemeStore) Get() model.Theme {
	raw, ok, err := s.kv.Get(ThemeKey)
	if err != nil || !ok {
		return s.fallback
	}
	if t := model.Theme(raw); t.Valid() {
		return t
	}
	return s.fallback
}

func (s *ThemeStore) Set(t model.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	return s.kv.Set(ThemeKey, string(t))
}
