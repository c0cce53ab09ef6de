package market

import (
	"testing"

	"github.com/dukerupert/mercado/internal/model"
)

func TestTotal(t *testing.T) {
	if got := Total(sampleItems()); got != 18 {
		t.Errorf("total = %v, want 18", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("total of nothing = %v, want 0", got)
	}
}

func TestTotalIsAdditive(t *testing.T) {
	items := sampleItems()
	extras := []model.Item{
		{ID: "e1", Quantity: 3, UnitPrice: 2.5},
		{ID: "e2", Quantity: 0.5, UnitPrice: 40},
		{ID: "e3", Quantity: 1, UnitPrice: 0},
	}
	for _, x := range extras {
		got := Total(AddItem(items, x))
		want := Total(items) + x.Quantity*x.UnitPrice
		if got != want {
			t.Errorf("adding %s: total = %v, want %v", x.ID, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleItems())
	want := Summary{Acquired: 2, Pending: 2, Total: 18}
	if s != want {
		t.Errorf("summary = %+v, want %+v", s, want)
	}
}
