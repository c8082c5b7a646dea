package memory

import (
	"context"
	"fmt"

	"ndjimba/internal/core/domain"
)

// Catalog is a read-only catalog held in memory. It is safe for concurrent
// use since it is never mutated after construction.
type Catalog struct {
	records []domain.Property
	byID    map[string]int
}

// NewCatalog validates records and takes a private copy of them.
func NewCatalog(records []domain.Property) (*Catalog, error) {
	c := &Catalog{
		records: domain.CloneAll(records),
		byID:    make(map[string]int, len(records)),
	}
	for i := range c.records {
		p := &c.records[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidProperty, p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// NewSampleCatalog returns the catalog seeded with SampleProperties.
func NewSampleCatalog() *Catalog {
	c, err := NewCatalog(SampleProperties())
	if err != nil {
		panic(fmt.Sprintf("sample catalog is invalid: %v", err))
	}
	return c
}

func (c *Catalog) All(ctx context.Context) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.CloneAll(c.records), nil
}

func (c *Catalog) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	p := c.records[i].Clone()
	return &p, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}
