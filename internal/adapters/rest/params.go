package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"ndjimba/internal/core/domain"
)

const unboundedParam = "none"

// parseStringSlice accepts both repeated keys and comma separated values,
// dropping blanks and duplicates.
func parseStringSlice(query url.Values, key string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, raw := range query[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(query url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return &v, nil
}

func parseInt64(query url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return &v, nil
}

func parseFloat(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%s must be a non-negative number", key)
	}
	return &v, nil
}

// parseCeiling reads maxPrice: absent, "none" for no upper bound, or a number.
func parseCeiling(query url.Values, key string) (domain.PriceCeiling, error) {
	raw := strings.TrimSpace(query.Get(key))
	switch raw {
	case "":
		return domain.NoCeiling(), nil
	case unboundedParam:
		return domain.UnboundedCeiling(), nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return domain.NoCeiling(), fmt.Errorf("%s must be a non-negative integer or %q", key, unboundedParam)
	}
	return domain.CeilingAt(v), nil
}

// parseSearchFilters builds filters through the same operations the search
// screen uses, so scoping rules apply to query parameters too.
func parseSearchFilters(query url.Values) (domain.SearchFilters, error) {
	filters := domain.NewSearchFilters()

	if raw := strings.TrimSpace(query.Get("city")); raw != "" {
		city, err := domain.ParseCity(raw)
		if err != nil {
			return filters, err
		}
		if err := filters.SelectCity(city); err != nil {
			return filters, err
		}
	}

	for _, n := range parseStringSlice(query, "neighborhoods") {
		if err := filters.ToggleNeighborhood(n); err != nil {
			return filters, err
		}
	}

	for _, raw := range parseStringSlice(query, "types") {
		t, err := domain.ParsePropertyType(raw)
		if err != nil {
			return filters, err
		}
		if err := filters.TogglePropertyType(t); err != nil {
			return filters, err
		}
	}

	if err := parsePrice(query, &filters); err != nil {
		return filters, err
	}

	minRooms, err := parseInt(query, "minRooms")
	if err != nil {
		return filters, err
	}
	filters.MinRooms = minRooms

	minSurface, err := parseFloat(query, "minSurface")
	if err != nil {
		return filters, err
	}
	filters.MinSurface = minSurface

	filters.Query = strings.TrimSpace(query.Get("q"))
	return filters, nil
}

func parsePrice(query url.Values, filters *domain.SearchFilters) error {
	bracket, err := parseInt(query, "priceRange")
	if err != nil {
		return err
	}
	minPrice, err := parseInt64(query, "minPrice")
	if err != nil {
		return err
	}
	maxPrice, err := parseCeiling(query, "maxPrice")
	if err != nil {
		return err
	}

	if bracket != nil {
		if minPrice != nil || maxPrice.IsSet() {
			return fmt.Errorf("%w: priceRange cannot be combined with minPrice or maxPrice", domain.ErrInvalidPriceRange)
		}
		return filters.SelectPriceRange(*bracket)
	}
	if minPrice == nil && !maxPrice.IsSet() {
		return nil
	}
	return filters.SetPriceBounds(minPrice, maxPrice)
}
