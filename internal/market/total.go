package market

import "github.com/dukerupert/mercado/internal/model"

// Total is the sum of quantity times unit price over items. It is cheap and
// always derived from the current items; never store it.
func Total(items []model.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Quantity * it.UnitPrice
	}
	return sum
}

// Summary is the header line shown above an open list.
type Summary struct {
	Acquired int     `json:"acquired"`
	Pending  int     `json:"pending"`
	Total    float64 `json:"total"`
}

func Summarize(items []model.Item) Summary {
	var s Summary
	for _, it := range items {
		if it.Acquired {
			s.Acquired++
		}
	}
	s.Pending = len(items) - s.Acquired
	s.Total = Total(items)
	return s
}
