package session

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/model"
)

type memRepo struct {
	lists   []model.List
	saves   int
	cleared bool
	failing bool
}

func (r *memRepo) Load() []model.List { return market.CloneLists(r.lists) }

func (r *memRepo) Save(lists []model.List) error {
	if r.failing {
		return errors.New("disk full")
	}
	r.saves++
	r.lists = market.CloneLists(lists)
	return nil
}

func (r *memRepo) Clear() error {
	r.cleared = true
	r.lists = nil
	return nil
}

type memThemes struct{ theme model.Theme }

func (t *memThemes) Get() model.Theme        { return t.theme }
func (t *memThemes) Set(th model.Theme) error { t.theme = th; return nil }

func testStamper() market.Stamper {
	var n int
	base := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	return market.Stamper{
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Now: func() time.Time {
			n++
			return base.Add(time.Duration(n) * time.Second)
		},
	}
}

func newTestSession(t *testing.T, repo *memRepo) (*Session, *[]Snapshot) {
	t.Helper()
	var seen []Snapshot
	s := New(repo, &memThemes{theme: model.ThemeDark}, Options{
		Stamper:  testStamper(),
		Location: time.UTC,
		Logger:   slog.Default(),
		OnChange: func(snap Snapshot) { seen = append(seen, snap) },
	})
	return s, &seen
}

// createList composes and finalizes a list with the given item names.
func createList(t *testing.T, s *Session, name string, items ...string) model.List {
	t.Helper()
	s.GoCreate()
	s.SetDraftName(name)
	for _, it := range items {
		if _, err := s.AddDraftItem(it, 1, model.UnitCount); err != nil {
			t.Fatalf("add draft item %q: %v", it, err)
		}
	}
	list, ok := s.FinalizeDraft()
	if !ok {
		t.Fatal("finalize draft failed")
	}
	return list
}

func TestNewLoadsSavedState(t *testing.T) {
	repo := &memRepo{lists: []model.List{{ID: "l1", Name: "Feira", Items: []model.Item{}}}}
	s, _ := newTestSession(t, repo)

	snap := s.Snapshot()
	if snap.Mode != model.ModeHome {
		t.Errorf("mode = %q, want home", snap.Mode)
	}
	if len(snap.Lists) != 1 || snap.Lists[0].Name != "Feira" {
		t.Errorf("lists = %+v", snap.Lists)
	}
	if snap.Theme != model.ThemeDark {
		t.Errorf("theme = %q", snap.Theme)
	}
}

func TestFinalizeDraftCreatesAndOpensList(t *testing.T) {
	repo := &memRepo{}
	s, seen := newTestSession(t, repo)

	list := createList(t, s, "", "arroz")

	snap := s.Snapshot()
	if snap.Mode != model.ModeView || snap.CurrentListID != list.ID {
		t.Errorf("mode = %q current = %q", snap.Mode, snap.CurrentListID)
	}
	if snap.Current == nil || snap.Current.Name != "Lista sem nome" {
		t.Fatalf("current = %+v", snap.Current)
	}
	if snap.Current.Items[0].Name != "Arroz" {
		t.Errorf("item name = %q, want Arroz", snap.Current.Items[0].Name)
	}
	if len(snap.Draft) != 0 || snap.DraftName != "" {
		t.Error("draft should be cleared after finalize")
	}
	if len(repo.lists) != 1 {
		t.Errorf("expected list persisted, repo has %d", len(repo.lists))
	}
	if len(*seen) == 0 {
		t.Error("expected change notifications")
	}
}

func TestFinalizeEmptyDraftIsIgnored(t *testing.T) {
	repo := &memRepo{}
	s, _ := newTestSession(t, repo)

	s.GoCreate()
	s.SetDraftName("Nada")
	if _, ok := s.FinalizeDraft(); ok {
		t.Fatal("expected empty draft to be rejected")
	}
	snap := s.Snapshot()
	if snap.Mode != model.ModeCreate || len(snap.Lists) != 0 {
		t.Errorf("state changed: mode=%q lists=%d", snap.Mode, len(snap.Lists))
	}
	if repo.saves != 0 {
		t.Errorf("saves = %d, want 0", repo.saves)
	}
}

func TestAddDraftItemValidates(t *testing.T) {
	s, _ := newTestSession(t, &memRepo{})
	s.GoCreate()

	if _, err := s.AddDraftItem("  ", 1, model.UnitCount); !errors.Is(err, market.ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
	if _, err := s.AddDraftItem("Leite", 0, model.UnitCount); !errors.Is(err, market.ErrInvalidQuantity) {
		t.Errorf("err = %v, want ErrInvalidQuantity", err)
	}
	if got := len(s.Snapshot().Draft); got != 0 {
		t.Errorf("draft has %d items, want 0", got)
	}
}

func TestItemCommandsOnCurrentList(t *testing.T) {
	repo := &memRepo{}
	s, _ := newTestSession(t, repo)
	list := createList(t, s, "Mês", "arroz", "feijão", "café")
	a, b := list.Items[0].ID, list.Items[1].ID

	if !s.SetUnitPrice(a, 10) {
		t.Fatal("set price failed")
	}
	if !s.SetQuantity(b, 2) || !s.SetUnitPrice(b, 5) {
		t.Fatal("set quantity/price failed")
	}
	if !s.ToggleAcquired(a) {
		t.Fatal("toggle failed")
	}

	snap := s.Snapshot()
	if snap.Summary.Total != 20 {
		t.Errorf("total = %v, want 20", snap.Summary.Total)
	}
	if snap.Summary.Acquired != 1 || snap.Summary.Pending != 2 {
		t.Errorf("summary = %+v", snap.Summary)
	}

	if !s.SortPendingFirst() {
		t.Fatal("sort failed")
	}
	items := s.Snapshot().Current.Items
	if items[len(items)-1].ID != a {
		t.Errorf("acquired item should be last, got %s", items[len(items)-1].ID)
	}

	if !s.ClearAcquired() {
		t.Fatal("clear acquired failed")
	}
	if got := len(s.Snapshot().Current.Items); got != 2 {
		t.Errorf("items = %d, want 2", got)
	}

	if !s.MarkAllAcquired() {
		t.Fatal("mark all failed")
	}
	if !s.RemoveItem(b) {
		t.Fatal("remove failed")
	}
	for _, it := range repo.lists[0].Items {
		if !it.Acquired {
			t.Errorf("persisted item %s not acquired", it.ID)
		}
	}
}

func TestInvalidEditsAreNoOps(t *testing.T) {
	repo := &memRepo{}
	s, seen := newTestSession(t, repo)
	list := createList(t, s, "Mês", "arroz")
	id := list.Items[0].ID
	before := s.Snapshot()
	saves, notes := repo.saves, len(*seen)

	if s.SetQuantity(id, -1) || s.SetUnitPrice(id, -5) || s.ToggleAcquired("missing") || s.RemoveItem("missing") {
		t.Error("invalid edit reported a change")
	}

	after := s.Snapshot()
	if !after.Current.UpdatedAt.Equal(before.Current.UpdatedAt) {
		t.Error("updatedAt changed on a no-op")
	}
	if repo.saves != saves || len(*seen) != notes {
		t.Error("no-op edits should not persist or notify")
	}
}

func TestItemCommandsWithoutSelection(t *testing.T) {
	s, _ := newTestSession(t, &memRepo{})

	if s.MarkAllAcquired() {
		t.Error("expected no change without a selected list")
	}
	if _, err := s.AddItem("Pão", 1, model.UnitCount); !errors.Is(err, ErrNoListSelected) {
		t.Errorf("err = %v, want ErrNoListSelected", err)
	}
}

func TestAddItemInView(t *testing.T) {
	s, _ := newTestSession(t, &memRepo{})
	list := createList(t, s, "Mês", "arroz")
	s.GoView(list.ID)
	s.SetAddingItem(true)

	item, err := s.AddItem("banana prata", 1.2, model.UnitKilogram)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	snap := s.Snapshot()
	if snap.AddingInView {
		t.Error("add form should close after adding")
	}
	last := snap.Current.Items[len(snap.Current.Items)-1]
	if last.ID != item.ID || last.Name != "Banana Prata" {
		t.Errorf("last item = %+v", last)
	}
}

func TestDuplicateAndDelete(t *testing.T) {
	s, _ := newTestSession(t, &memRepo{})
	list := createList(t, s, "Mês", "arroz", "feijão", "café")

	dup, err := s.Duplicate(list.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.Name != "Mês (cópia)" || len(dup.Items) != 3 {
		t.Errorf("dup = %+v", dup)
	}
	if _, err := s.Duplicate("missing"); !errors.Is(err, market.ErrListNotFound) {
		t.Errorf("err = %v, want ErrListNotFound", err)
	}

	// Deleting another list keeps the selection.
	if !s.Delete(dup.ID) {
		t.Fatal("delete failed")
	}
	snap := s.Snapshot()
	if snap.CurrentListID != list.ID || snap.Mode != model.ModeView {
		t.Errorf("selection lost: mode=%q current=%q", snap.Mode, snap.CurrentListID)
	}

	if s.Delete("missing") {
		t.Error("deleting unknown id reported a change")
	}

	// Deleting the open list goes home.
	s.Delete(list.ID)
	snap = s.Snapshot()
	if snap.CurrentListID != "" || snap.Mode != model.ModeHome || snap.Current != nil {
		t.Errorf("expected home with no selection, got mode=%q current=%q", snap.Mode, snap.CurrentListID)
	}
}

func TestResetAll(t *testing.T) {
	repo := &memRepo{}
	s, _ := newTestSession(t, repo)
	createList(t, s, "A", "arroz")
	createList(t, s, "B", "feijão")

	s.ResetAll()

	snap := s.Snapshot()
	if len(snap.Lists) != 0 || snap.Mode != model.ModeHome {
		t.Errorf("lists=%d mode=%q", len(snap.Lists), snap.Mode)
	}
	if !repo.cleared {
		t.Error("expected saved lists cleared")
	}
}

func TestPersistFailureKeepsChangeInMemory(t *testing.T) {
	repo := &memRepo{failing: true}
	s, _ := newTestSession(t, repo)

	createList(t, s, "Mês", "arroz")

	if got := len(s.Snapshot().Lists); got != 1 {
		t.Errorf("lists in memory = %d, want 1", got)
	}
	if len(repo.lists) != 0 {
		t.Error("failing repo should hold nothing")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession(t, &memRepo{})
	createList(t, s, "Mês", "arroz")

	snap := s.Snapshot()
	snap.Lists[0].Items[0].Name = "Mudado"
	snap.Current.Name = "Outro"

	again := s.Snapshot()
	if again.Lists[0].Items[0].Name != "Arroz" || again.Current.Name != "Mês" {
		t.Error("snapshot shares state with the session")
	}
}

func TestExportText(t *testing.T) {
	s, _ := newTestSession(t, &memRepo{})
	list := createList(t, s, "Mês", "arroz")

	text, err := s.ExportText("")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := market.ExportText(s.Snapshot().Lists[0], time.UTC)
	if text != want {
		t.Errorf("export = %q, want %q", text, want)
	}
	if _, err := s.ExportText("missing"); !errors.Is(err, market.ErrListNotFound) {
		t.Errorf("err = %v, want ErrListNotFound", err)
	}

	s.GoHome()
	if _, err := s.ExportText(""); !errors.Is(err, ErrNoListSelected) {
		t.Errorf("err = %v, want ErrNoListSelected", err)
	}
	if _, err := s.ExportText(list.ID); err != nil {
		t.Errorf("export by id: %v", err)
	}
}

func TestToggleTheme(t *testing.T) {
	themes := &memThemes{theme: model.ThemeDark}
	s := New(&memRepo{}, themes, Options{})

	if got := s.ToggleTheme(); got != model.ThemeLight {
		t.Errorf("theme = %q, want light", got)
	}
	if themes.theme != model.ThemeLight {
		t.Error("theme not persisted")
	}
	if got := s.ToggleTheme(); got != model.ThemeDark {
		t.Errorf("theme = %q, want dark", got)
	}
}

func TestRestoreResetsScreenState(t *testing.T) {
	repo := &memRepo{}
	s, _ := newTestSession(t, repo)
	list := createList(t, s, "A", "arroz")
	s.GoView(list.ID)
	s.SetAddingItem(true)
	s.GoCreate()
	s.SetDraftName("Rascunho")
	if _, err := s.AddDraftItem("leite", 1, model.UnitCount); err != nil {
		t.Fatalf("add draft item: %v", err)
	}
	s.SetAddingItem(true)

	s.Restore([]model.List{{ID: "r1", Name: "Restaurada", Items: []model.Item{}}})

	snap := s.Snapshot()
	if snap.Mode != model.ModeHome || snap.CurrentListID != "" {
		t.Errorf("mode=%q current=%q", snap.Mode, snap.CurrentListID)
	}
	if len(snap.Draft) != 0 || snap.DraftName != "" {
		t.Errorf("draft not cleared: %+v %q", snap.Draft, snap.DraftName)
	}
	if snap.AddingInView {
		t.Error("expected add form closed")
	}
	if len(snap.Lists) != 1 || snap.Lists[0].ID != "r1" {
		t.Errorf("lists = %+v", snap.Lists)
	}
}
