package port

import (
	"context"
	"ndjimba/internal/core/domain"
)

// CatalogPort is the read-only listing source.
type CatalogPort interface {
	// All returns a copy of every record in catalog order.
	All(ctx context.Context) ([]domain.Property, error)
	// FindByID returns domain.ErrPropertyNotFound when no record has the id.
	FindByID(ctx context.Context, id string) (*domain.Property, error)
}
