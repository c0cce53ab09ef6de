package market

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/mercado/internal/model"
)

const (
	DefaultListName = "Lista sem nome"
	copySuffix      = " (cópia)"
)

// Stamper supplies identifiers and timestamps to list operations.
type Stamper struct {
	NewID func() string
	Now   func() time.Time
}

// DefaultStamper issues random UUIDs and UTC wall-clock times.
func DefaultStamper() Stamper {
	return Stamper{
		NewID: uuid.NewString,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateList finalizes a draft into a new list placed at the front of the
// collection. It reports false and changes nothing when items is empty.
func CreateList(lists []model.List, name string, items []model.Item, st Stamper) ([]model.List, model.List, bool) {
	if len(items) == 0 {
		return lists, model.List{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultListName
	}
	now := st.Now()
	list := model.List{
		ID:        st.NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     CloneItems(items),
	}
	return prepend(lists, list), list, true
}

// DuplicateList copies the list with the given id under a new identifier.
// Item identifiers are kept as they are in the source list.
func DuplicateList(lists []model.List, id string, st Stamper) ([]model.List, model.List, error) {
	src, ok := FindList(lists, id)
	if !ok {
		return lists, model.List{}, ErrListNotFound
	}
	now := st.Now()
	dup := model.List{
		ID:        st.NewID(),
		Name:      src.Name + copySuffix,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     CloneItems(src.Items),
	}
	return prepend(lists, dup), dup, nil
}

func DeleteList(lists []model.List, id string) []model.List {
	i := slices.IndexFunc(lists, func(l model.List) bool { return l.ID == id })
	if i < 0 {
		return lists
	}
	out := make([]model.List, 0, len(lists)-1)
	out = append(out, lists[:i]...)
	return append(out, lists[i+1:]...)
}

func ResetAll() []model.List {
	return []model.List{}
}

func FindList(lists []model.List, id string) (model.List, bool) {
	for _, l := range lists {
		if l.ID == id {
			return l, true
		}
	}
	return model.List{}, false
}

// UpdateItems runs an item transformation against one list and refreshes
// its UpdatedAt. Every item edit goes through here. It reports false, and
// returns lists untouched, when no list has the id or fn left the items as
// they were.
func UpdateItems(lists []model.List, id string, fn func([]model.Item) []model.Item, st Stamper) ([]model.List, bool) {
	l, ok := FindList(lists, id)
	if !ok {
		return lists, false
	}
	items := fn(l.Items)
	if slices.Equal(items, l.Items) {
		return lists, false
	}
	return updateList(lists, id, st, func(l *model.List) {
		l.Items = items
	})
}

// RenameList sets a new display name. Blank names are ignored.
func RenameList(lists []model.List, id, name string, st Stamper) ([]model.List, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return lists, false
	}
	return updateList(lists, id, st, func(l *model.List) { l.Name = name })
}

func updateList(lists []model.List, id string, st Stamper, fn func(*model.List)) ([]model.List, bool) {
	i := slices.IndexFunc(lists, func(l model.List) bool { return l.ID == id })
	if i < 0 {
		return lists, false
	}
	out := CloneLists(lists)
	fn(&out[i])
	out[i].UpdatedAt = st.Now()
	return out, true
}

// CloneLists copies the collection and every item slice in it.
func CloneLists(lists []model.List) []model.List {
	out := make([]model.List, len(lists))
	for i, l := range lists {
		l.Items = CloneItems(l.Items)
		out[i] = l
	}
	return out
}

func prepend(lists []model.List, l model.List) []model.List {
	out := make([]model.List, 0, len(lists)+1)
	out = append(out, l)
	return append(out, lists...)
}
