package domain

import "fmt"

type ceilingKind uint8

const (
	ceilingAbsent ceilingKind = iota
	ceilingUnbounded
	ceilingBounded
)

// PriceCeiling is the optional upper price bound. Absent means no price
// ceiling was requested at all; Unbounded is an explicit "no maximum" (the
// top bracket). Both let every price through but are kept apart.
type PriceCeiling struct {
	kind  ceilingKind
	value int64
}

// NoCeiling is the absent bound.
func NoCeiling() PriceCeiling { return PriceCeiling{} }

// UnboundedCeiling is an explicit bound with no maximum.
func UnboundedCeiling() PriceCeiling { return PriceCeiling{kind: ceilingUnbounded} }

// CeilingAt bounds prices to at most max.
func CeilingAt(max int64) PriceCeiling { return PriceCeiling{kind: ceilingBounded, value: max} }

// IsSet reports whether a ceiling (bounded or not) is present.
func (c PriceCeiling) IsSet() bool { return c.kind != ceilingAbsent }

// IsUnbounded reports whether the ceiling is the explicit "no maximum".
func (c PriceCeiling) IsUnbounded() bool { return c.kind == ceilingUnbounded }

// Value returns the bound and true when the ceiling is bounded.
func (c PriceCeiling) Value() (int64, bool) {
	if c.kind != ceilingBounded {
		return 0, false
	}
	return c.value, true
}

// Allows reports whether price passes the ceiling.
func (c PriceCeiling) Allows(price int64) bool {
	if c.kind != ceilingBounded {
		return true
	}
	return price <= c.value
}

func (c PriceCeiling) String() string {
	switch c.kind {
	case ceilingUnbounded:
		return "unbounded"
	case ceilingBounded:
		return fmt.Sprintf("%d", c.value)
	default:
		return "none"
	}
}

// PriceRange is one bracket of the search screen.
type PriceRange struct {
	Min   int64
	Max   PriceCeiling
	Label string
}

// PriceRanges are the brackets offered by the search screen, in FCFA.
var PriceRanges = []PriceRange{
	{Min: 0, Max: CeilingAt(100000), Label: "Moins de 100 000 FCFA"},
	{Min: 100000, Max: CeilingAt(200000), Label: "100 000 - 200 000 FCFA"},
	{Min: 200000, Max: CeilingAt(300000), Label: "200 000 - 300 000 FCFA"},
	{Min: 300000, Max: CeilingAt(500000), Label: "300 000 - 500 000 FCFA"},
	{Min: 500000, Max: UnboundedCeiling(), Label: "Plus de 500 000 FCFA"},
}

// PriceRangeAt returns the bracket at index.
func PriceRangeAt(index int) (PriceRange, error) {
	if index < 0 || index >= len(PriceRanges) {
		return PriceRange{}, fmt.Errorf("%w: bracket %d", ErrInvalidPriceRange, index)
	}
	return PriceRanges[index], nil
}
