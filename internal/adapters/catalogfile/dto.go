package catalogfile

import (
	"time"

	"ndjimba/internal/core/domain"
)

// FormatVersion is the catalog file format written by Encode.
const FormatVersion = 1

type fileDTO struct {
	Version    int           `json:"version"`
	Properties []propertyDTO `json:"properties"`
}

type propertyDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Price         int64     `json:"price"`
	Neighborhood  string    `json:"neighborhood"`
	City          string    `json:"city"`
	Surface       float64   `json:"surface"`
	Rooms         int       `json:"rooms"`
	Bathrooms     int       `json:"bathrooms"`
	Images        []string  `json:"images"`
	Available     bool      `json:"available"`
	Verified      bool      `json:"verified"`
	OwnerName     string    `json:"owner_name"`
	OwnerPhone    string    `json:"owner_phone"`
	OwnerWhatsApp string    `json:"owner_whatsapp,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toDomain(d propertyDTO) domain.Property {
	return domain.Property{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		Type:          domain.PropertyType(d.Type),
		Price:         d.Price,
		Neighborhood:  d.Neighborhood,
		City:          domain.City(d.City),
		Surface:       d.Surface,
		Rooms:         d.Rooms,
		Bathrooms:     d.Bathrooms,
		Images:        d.Images,
		Available:     d.Available,
		Verified:      d.Verified,
		OwnerName:     d.OwnerName,
		OwnerPhone:    d.OwnerPhone,
		OwnerWhatsApp: d.OwnerWhatsApp,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func fromDomain(p domain.Property) propertyDTO {
	return propertyDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Type:          string(p.Type),
		Price:         p.Price,
		Neighborhood:  p.Neighborhood,
		City:          string(p.City),
		Surface:       p.Surface,
		Rooms:         p.Rooms,
		Bathrooms:     p.Bathrooms,
		Images:        p.Images,
		Available:     p.Available,
		Verified:      p.Verified,
		OwnerName:     p.OwnerName,
		OwnerPhone:    p.OwnerPhone,
		OwnerWhatsApp: p.OwnerWhatsApp,
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}
