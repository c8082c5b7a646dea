package domain

// FilterOptions is what the search screen offers for the current city.
type FilterOptions struct {
	Cities        []City
	Neighborhoods []string
	PropertyTypes []DictionaryItem
	PriceRanges   []PriceRange
	SortOptions   []DictionaryItem
}

// BuildFilterOptions scopes neighborhoods to city, or lists all of them when
// city is empty.
func BuildFilterOptions(city City) (FilterOptions, error) {
	neighborhoods := AllNeighborhoods()
	if city != "" {
		if !city.IsValid() {
			return FilterOptions{}, ErrUnknownCity
		}
		neighborhoods = NeighborhoodsOf(city)
	}
	return FilterOptions{
		Cities:        append([]City(nil), Cities...),
		Neighborhoods: neighborhoods,
		PropertyTypes: append([]DictionaryItem(nil), PropertyTypes...),
		PriceRanges:   append([]PriceRange(nil), PriceRanges...),
		SortOptions:   append([]DictionaryItem(nil), SortOptions...),
	}, nil
}
