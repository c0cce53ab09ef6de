package market

import (
	"math"
	"slices"

	"github.com/dukerupert/mercado/internal/model"
)

// Item sequence operations. None of them modify their input: each returns a
// fresh slice, or the input itself when nothing changed.

// CloneItems returns a copy of items with its own backing array. The result
// is never nil so it encodes as an empty JSON array.
func CloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

func indexOf(items []model.Item, id string) int {
	return slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
}

// updateItem applies fn to a copy of the item with the given id.
func updateItem(items []model.Item, id string, fn func(*model.Item)) []model.Item {
	i := indexOf(items, id)
	if i < 0 {
		return items
	}
	out := CloneItems(items)
	fn(&out[i])
	return out
}

// AddItem appends item. The caller is expected to have validated it,
// usually through NewItem.
func AddItem(items []model.Item, item model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func RemoveItem(items []model.Item, id string) []model.Item {
	if indexOf(items, id) < 0 {
		return items
	}
	out := make([]model.Item, 0, len(items)-1)
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func ToggleAcquired(items []model.Item, id string) []model.Item {
	return updateItem(items, id, func(it *model.Item) { it.Acquired = !it.Acquired })
}

// SetQuantity replaces the quantity of the matching item. Values that are
// not finite or not greater than zero are ignored.
func SetQuantity(items []model.Item, id string, quantity float64) []model.Item {
	if !validQuantity(quantity) {
		return items
	}
	return updateItem(items, id, func(it *model.Item) { it.Quantity = quantity })
}

// SetUnitPrice replaces the unit price of the matching item. Negative or
// non-finite prices are ignored.
func SetUnitPrice(items []model.Item, id string, price float64) []model.Item {
	if !validPrice(price) {
		return items
	}
	return updateItem(items, id, func(it *model.Item) { it.UnitPrice = price })
}

func MarkAllAcquired(items []model.Item) []model.Item {
	out := CloneItems(items)
	for i := range out {
		out[i].Acquired = true
	}
	return out
}

// ClearAcquired drops every item already in the cart.
func ClearAcquired(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !it.Acquired {
			out = append(out, it)
		}
	}
	return out
}

// SortPendingFirst moves pending items ahead of acquired ones. The partition
// is stable: insertion order is kept inside each group.
func SortPendingFirst(items []model.Item) []model.Item {
	out := CloneItems(items)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return boolRank(a.Acquired) - boolRank(b.Acquired)
	})
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func validQuantity(q float64) bool {
	return !math.IsNaN(q) && !math.IsInf(q, 0) && q > 0
}

func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}
