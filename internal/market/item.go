package market

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dukerupert/mercado/internal/model"
)

// TitleCase lowercases s and capitalises the first letter of every
// whitespace-delimited word. Runs of whitespace collapse to one space.
func TitleCase(s string) string {
	lower := cases.Lower(language.BrazilianPortuguese)
	words := strings.Fields(s)
	for i, w := range words {
		w = lower.String(w)
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// NewItem validates user input and builds a pending item with no price.
func NewItem(newID func() string, name string, quantity float64, unit model.Unit) (model.Item, error) {
	name = TitleCase(strings.TrimSpace(name))
	if name == "" {
		return model.Item{}, ErrEmptyName
	}
	if !validQuantity(quantity) {
		return model.Item{}, ErrInvalidQuantity
	}
	if unit == "" {
		unit = model.UnitCount
	}
	if !unit.Valid() {
		return model.Item{}, ErrInvalidUnit
	}
	return model.Item{
		ID:       newID(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}, nil
}
