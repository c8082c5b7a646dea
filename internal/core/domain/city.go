package domain

import "fmt"

// City is one of the three municipalities covered by the catalog.
type City string

const (
	CityLibreville City = "Libreville"
	CityAkanda     City = "Akanda"
	CityOwendo     City = "Owendo"
)

// Cities lists the supported cities in display order.
var Cities = []City{CityLibreville, CityAkanda, CityOwendo}

var librevilleNeighborhoods = []string{
	"Akébé Frontière", "Akébé Plaine", "Akébé Poteau", "Akébé Ville",
	"Awendjé", "Batterie IV", "Centre-ville", "Glass", "Gros Bouquet",
	"Lalala", "Louis", "Mindoubé", "Montagne Sainte", "Nkembo",
	"Nombakélé", "Nzeng-Ayong", "Oloumi", "PK5", "PK6", "PK7", "PK8",
	"PK9", "PK10", "PK11", "PK12", "Plein Ciel",
}

var akandaNeighborhoods = []string{
	"Angondjé", "Avorbam", "Bambouchine", "Cap Caravane", "Cap Estérias",
	"Cap Santa Clara", "Malibé 1", "Malibé 2", "Okala",
}

var owendoNeighborhoods = []string{
	"Akournam 1", "Akournam 2", "Alénakiri", "Awoungou", "Barracuda",
	"Nomba Domaine", "Owendo-Centre", "Terre Nouvelle",
}

// neighborhoodCity is the reverse index neighborhood -> owning city.
var neighborhoodCity = func() map[string]City {
	idx := make(map[string]City)
	for _, city := range Cities {
		for _, n := range NeighborhoodsOf(city) {
			idx[n] = city
		}
	}
	return idx
}()

// ParseCity returns the city matching s exactly.
func ParseCity(s string) (City, error) {
	for _, c := range Cities {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
}

// IsValid reports whether c is one of the supported cities.
func (c City) IsValid() bool {
	_, err := ParseCity(string(c))
	return err == nil
}

// NeighborhoodsOf returns a copy of the neighborhood set of a city, nil for an
// unknown city.
func NeighborhoodsOf(city City) []string {
	var src []string
	switch city {
	case CityLibreville:
		src = librevilleNeighborhoods
	case CityAkanda:
		src = akandaNeighborhoods
	case CityOwendo:
		src = owendoNeighborhoods
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AllNeighborhoods returns every neighborhood, grouped by city in display order.
func AllNeighborhoods() []string {
	out := make([]string, 0, len(librevilleNeighborhoods)+len(akandaNeighborhoods)+len(owendoNeighborhoods))
	for _, c := range Cities {
		out = append(out, NeighborhoodsOf(c)...)
	}
	return out
}

// CityOfNeighborhood returns the city that owns the neighborhood.
func CityOfNeighborhood(neighborhood string) (City, bool) {
	c, ok := neighborhoodCity[neighborhood]
	return c, ok
}

// NeighborhoodBelongsTo reports whether neighborhood is part of city.
func NeighborhoodBelongsTo(neighborhood string, city City) bool {
	c, ok := CityOfNeighborhood(neighborhood)
	return ok && c == city
}
