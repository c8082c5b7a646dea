package domain

import "fmt"

// SortKey selects the ordering of a result set.
type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortDateDesc  SortKey = "date_desc"
)

// DefaultSortKey is the ordering of a fresh search.
const DefaultSortKey = SortDateDesc

// SortOptions lists the orderings with their labels.
var SortOptions = []DictionaryItem{
	{SystemName: string(SortDateDesc), DisplayName: "Plus récents"},
	{SystemName: string(SortPriceAsc), DisplayName: "Prix croissant"},
	{SystemName: string(SortPriceDesc), DisplayName: "Prix décroissant"},
}

// ParseSortKey parses s; an empty string yields the default key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return DefaultSortKey, nil
	case SortPriceAsc, SortPriceDesc, SortDateDesc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}
