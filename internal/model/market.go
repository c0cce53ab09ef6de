package model

import "time"

// Unit is the measure an item quantity is expressed in.
type Unit string

const (
	UnitCount    Unit = "un"
	UnitKilogram Unit = "kg"
)

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u == UnitCount || u == UnitKilogram
}

// Item is one entry of a shopping list. The json names match the layout
// persisted by earlier versions of the app.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      Unit    `json:"unit"`
	Acquired  bool    `json:"inCart"`
	UnitPrice float64 `json:"unitPrice"`
}

type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Items     []Item    `json:"items"`
}

// Mode is the screen the UI is showing.
type Mode string

const (
	ModeHome   Mode = "home"
	ModeCreate Mode = "create"
	ModeView   Mode = "view"
	ModeEdit   Mode = "edit"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type Suggestion struct {
	Name string `json:"name"`
	Unit Unit   `json:"unit"`
}
