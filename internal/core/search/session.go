package search

import (
	"ndjimba/internal/core/domain"
)

// Session is the state of one search screen: a draft of filters edited by
// toggles, the applied result set and the current sort key. It is not safe
// for concurrent use.
type Session struct {
	catalog []domain.Property
	draft   domain.SearchFilters
	sortKey domain.SortKey
	results []domain.Property
}

// NewSession starts with the whole catalog, in catalog order, and the default sort key.
func NewSession(catalog []domain.Property) *Session {
	records := domain.CloneAll(catalog)
	return &Session{
		catalog: records,
		draft:   domain.NewSearchFilters(),
		sortKey: domain.DefaultSortKey,
		results: domain.CloneAll(records),
	}
}

// Filters exposes the draft for toggling. Changes take effect on Apply.
func (s *Session) Filters() *domain.SearchFilters {
	return &s.draft
}

// Apply filters the catalog with the draft and sorts by the current key.
func (s *Session) Apply() []domain.Property {
	s.results = Sort(Filter(s.catalog, s.draft), s.sortKey)
	return s.Results()
}

// ChangeSort re-sorts the current result set without filtering again.
func (s *Session) ChangeSort(key domain.SortKey) ([]domain.Property, error) {
	parsed, err := domain.ParseSortKey(string(key))
	if err != nil {
		return nil, err
	}
	s.sortKey = parsed
	s.results = Sort(s.results, parsed)
	return s.Results(), nil
}

// Reset clears the draft and restores the full catalog in its original order.
func (s *Session) Reset() []domain.Property {
	s.draft.Reset()
	s.results = domain.CloneAll(s.catalog)
	return s.Results()
}

// Results returns a copy of the current result set.
func (s *Session) Results() []domain.Property {
	return domain.CloneAll(s.results)
}

// SortKey returns the current ordering.
func (s *Session) SortKey() domain.SortKey {
	return s.sortKey
}
