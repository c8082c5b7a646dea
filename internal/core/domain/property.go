package domain

import (
	"fmt"
	"time"
)

// Property is a single listing of the catalog. Records are immutable once
// loaded; callers receive copies.
type Property struct {
	ID            string
	Title         string
	Description   string
	Type          PropertyType
	Price         int64
	Neighborhood  string
	City          City
	Surface       float64
	Rooms         int
	Bathrooms     int
	Images        []string
	Available     bool
	Verified      bool
	OwnerName     string
	OwnerPhone    string
	OwnerWhatsApp string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the record invariants of the catalog.
func (p *Property) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProperty)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: property %s: %w", ErrInvalidProperty, p.ID, ErrUnknownPropertyType)
	}
	if !p.City.IsValid() {
		return fmt.Errorf("%w: property %s: %w", ErrInvalidProperty, p.ID, ErrUnknownCity)
	}
	if !NeighborhoodBelongsTo(p.Neighborhood, p.City) {
		return fmt.Errorf("%w: property %s: neighborhood %q is not part of %s", ErrInvalidProperty, p.ID, p.Neighborhood, p.City)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: property %s: price must be positive", ErrInvalidProperty, p.ID)
	}
	if p.Surface <= 0 {
		return fmt.Errorf("%w: property %s: surface must be positive", ErrInvalidProperty, p.ID)
	}
	if p.Rooms < 0 || p.Bathrooms < 0 {
		return fmt.Errorf("%w: property %s: negative room count", ErrInvalidProperty, p.ID)
	}
	noRooms := p.Rooms == 0 && p.Bathrooms == 0
	if p.Type.IsLand() != noRooms {
		return fmt.Errorf("%w: property %s: rooms and bathrooms must be zero exactly for land", ErrInvalidProperty, p.ID)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("%w: property %s: at least one image is required", ErrInvalidProperty, p.ID)
	}
	if p.OwnerPhone == "" {
		return fmt.Errorf("%w: property %s: owner phone is required", ErrInvalidProperty, p.ID)
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return fmt.Errorf("%w: property %s: updated before created", ErrInvalidProperty, p.ID)
	}
	return nil
}

// Clone returns a deep copy of the record.
func (p Property) Clone() Property {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	return p
}

// CloneAll deep-copies a slice of records.
func CloneAll(records []Property) []Property {
	out := make([]Property, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}

// HasWhatsApp reports whether the owner can be reached over WhatsApp.
func (p *Property) HasWhatsApp() bool {
	return p.OwnerWhatsApp != ""
}

// HomeFeed is the content of the landing screen.
type HomeFeed struct {
	Featured []Property
	Recent   []Property
}

// PropertyDetailsView is a listing together with its contact actions.
type PropertyDetailsView struct {
	Property Property
	Contact  ContactLinks
}

// SearchResult is a filtered and sorted page of the catalog.
type SearchResult struct {
	Properties []Property
	Total      int
	Sort       SortKey
}
