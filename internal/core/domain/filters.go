package domain

import (
	"fmt"
	"slices"
)

// SearchFilters is the transient query state of a search session. The zero
// value selects everything.
type SearchFilters struct {
	City          City
	Neighborhoods []string
	PropertyTypes []PropertyType
	MinPrice      *int64
	MaxPrice      PriceCeiling
	MinRooms      *int
	MinSurface    *float64
	Query         string

	// 1-based index into PriceRanges of the selected bracket, 0 when none
	priceRange int
}

// NewSearchFilters returns empty filters.
func NewSearchFilters() SearchFilters {
	return SearchFilters{}
}

// IsEmpty reports whether no criterion is set.
func (f *SearchFilters) IsEmpty() bool {
	return f.City == "" &&
		len(f.Neighborhoods) == 0 &&
		len(f.PropertyTypes) == 0 &&
		f.MinPrice == nil &&
		!f.MaxPrice.IsSet() &&
		f.MinRooms == nil &&
		f.MinSurface == nil &&
		f.Query == ""
}

// Clone returns a copy that shares no slices with f.
func (f SearchFilters) Clone() SearchFilters {
	f.Neighborhoods = slices.Clone(f.Neighborhoods)
	f.PropertyTypes = slices.Clone(f.PropertyTypes)
	if f.MinPrice != nil {
		v := *f.MinPrice
		f.MinPrice = &v
	}
	if f.MinRooms != nil {
		v := *f.MinRooms
		f.MinRooms = &v
	}
	if f.MinSurface != nil {
		v := *f.MinSurface
		f.MinSurface = &v
	}
	return f
}

// ToggleNeighborhood adds the neighborhood, or removes it when already
// selected. With a city selected only that city's neighborhoods are accepted.
func (f *SearchFilters) ToggleNeighborhood(neighborhood string) error {
	owner, ok := CityOfNeighborhood(neighborhood)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNeighborhood, neighborhood)
	}
	if f.City != "" && owner != f.City {
		return fmt.Errorf("%w: %q is in %s, not %s", ErrNeighborhoodOutOfScope, neighborhood, owner, f.City)
	}
	if i := slices.Index(f.Neighborhoods, neighborhood); i >= 0 {
		f.Neighborhoods = slices.Delete(f.Neighborhoods, i, i+1)
		return nil
	}
	f.Neighborhoods = append(f.Neighborhoods, neighborhood)
	return nil
}

// TogglePropertyType adds or removes one category.
func (f *SearchFilters) TogglePropertyType(t PropertyType) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownPropertyType, t)
	}
	if i := slices.Index(f.PropertyTypes, t); i >= 0 {
		f.PropertyTypes = slices.Delete(f.PropertyTypes, i, i+1)
		return nil
	}
	f.PropertyTypes = append(f.PropertyTypes, t)
	return nil
}

// SelectCity selects the city, or deselects it when it is already selected.
// The neighborhood selection is cleared either way.
func (f *SearchFilters) SelectCity(city City) error {
	if !city.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	if f.City == city {
		f.City = ""
	} else {
		f.City = city
	}
	f.Neighborhoods = nil
	return nil
}

// SelectPriceRange selects the bracket at index, or clears the price bounds
// when the same bracket is selected again.
func (f *SearchFilters) SelectPriceRange(index int) error {
	bracket, err := PriceRangeAt(index)
	if err != nil {
		return err
	}
	if f.priceRange == index+1 {
		f.ClearPrice()
		return nil
	}
	min := bracket.Min
	f.MinPrice = &min
	f.MaxPrice = bracket.Max
	f.priceRange = index + 1
	return nil
}

// SetPriceBounds sets explicit bounds, dropping any bracket selection.
func (f *SearchFilters) SetPriceBounds(min *int64, max PriceCeiling) error {
	if min != nil && *min < 0 {
		return fmt.Errorf("%w: negative minimum", ErrInvalidPriceRange)
	}
	if v, ok := max.Value(); ok {
		if v < 0 || (min != nil && v < *min) {
			return fmt.Errorf("%w: maximum below minimum", ErrInvalidPriceRange)
		}
	}
	f.MinPrice = min
	f.MaxPrice = max
	f.priceRange = 0
	return nil
}

// ClearPrice removes both price bounds.
func (f *SearchFilters) ClearPrice() {
	f.MinPrice = nil
	f.MaxPrice = NoCeiling()
	f.priceRange = 0
}

// SelectedPriceRange returns the selected bracket index.
func (f *SearchFilters) SelectedPriceRange() (int, bool) {
	if f.priceRange == 0 {
		return 0, false
	}
	return f.priceRange - 1, true
}

// Reset clears every criterion.
func (f *SearchFilters) Reset() {
	*f = NewSearchFilters()
}
