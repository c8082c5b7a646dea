package mocks

import (
	"context"

	"ndjimba/internal/core/domain"
)

// MockCatalog implements port.CatalogPort for testing
type MockCatalog struct {
	AllFunc      func(ctx context.Context) ([]domain.Property, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.Property, error)
}

// NewMockCatalog creates a new MockCatalog with default behaviors
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{}
}

func (m *MockCatalog) All(ctx context.Context) ([]domain.Property, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	// Default behavior: empty catalog
	return []domain.Property{}, nil
}

func (m *MockCatalog) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrPropertyNotFound
}
