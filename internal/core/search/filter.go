package search

import (
	"slices"

	"ndjimba/internal/core/domain"
)

type criterion func(p *domain.Property) bool

// Filter returns the records passing every active criterion, in input order.
// The result never shares its backing array with records.
func Filter(records []domain.Property, filters domain.SearchFilters) []domain.Property {
	active := criteria(filters)
	out := make([]domain.Property, 0, len(records))
	for i := range records {
		if matchesAll(&records[i], active) {
			out = append(out, records[i].Clone())
		}
	}
	return out
}

// Matches reports whether a single record passes the filters.
func Matches(p *domain.Property, filters domain.SearchFilters) bool {
	return matchesAll(p, criteria(filters))
}

func matchesAll(p *domain.Property, active []criterion) bool {
	for _, c := range active {
		if !c(p) {
			return false
		}
	}
	return true
}

// criteria builds the predicates of the set criteria, in evaluation order:
// city, neighborhoods, types, min price, max price, min rooms, min surface, query.
func criteria(f domain.SearchFilters) []criterion {
	var out []criterion

	if f.City != "" {
		city := f.City
		out = append(out, func(p *domain.Property) bool { return p.City == city })
	}
	if len(f.Neighborhoods) > 0 {
		set := slices.Clone(f.Neighborhoods)
		out = append(out, func(p *domain.Property) bool { return slices.Contains(set, p.Neighborhood) })
	}
	if len(f.PropertyTypes) > 0 {
		set := slices.Clone(f.PropertyTypes)
		out = append(out, func(p *domain.Property) bool { return slices.Contains(set, p.Type) })
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		out = append(out, func(p *domain.Property) bool { return p.Price >= min })
	}
	if f.MaxPrice.IsSet() {
		ceiling := f.MaxPrice
		out = append(out, func(p *domain.Property) bool { return ceiling.Allows(p.Price) })
	}
	if f.MinRooms != nil {
		min := *f.MinRooms
		out = append(out, func(p *domain.Property) bool { return p.Rooms >= min })
	}
	if f.MinSurface != nil {
		min := *f.MinSurface
		out = append(out, func(p *domain.Property) bool { return p.Surface >= min })
	}
	if f.Query != "" {
		q := f.Query
		out = append(out, func(p *domain.Property) bool {
			return matchesQuery([]string{p.Title, p.Description, p.Neighborhood, string(p.City)}, q)
		})
	}
	return out
}
