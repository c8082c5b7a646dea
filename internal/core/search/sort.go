package search

import (
	"sort"

	"ndjimba/internal/core/domain"
)

// Sort returns a stably ordered copy of records. An unknown key keeps the input order.
func Sort(records []domain.Property, key domain.SortKey) []domain.Property {
	out := domain.CloneAll(records)
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}
