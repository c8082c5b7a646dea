package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ndjimba/internal/core/domain"
)

const propertyColumns = `id, title, description, property_type, price, neighborhood, city,
	surface, rooms, bathrooms, images, available, verified,
	owner_name, owner_phone, owner_whatsapp, created_at, updated_at`

// CatalogRepository serves the catalog from the properties table. Catalog
// order is the position column.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) (*CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("CatalogRepository: pool cannot be nil")
	}
	return &CatalogRepository{pool: pool}, nil
}

func (r *CatalogRepository) All(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("CatalogRepository: failed to query properties: %w", err)
	}
	defer rows.Close()

	var records []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("CatalogRepository: failed to scan property: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CatalogRepository: error during rows iteration: %w", err)
	}
	return records, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("CatalogRepository: failed to get property %s: %w", id, err)
	}
	return &p, nil
}

// ReplaceAll swaps the whole catalog for records inside one transaction,
// keeping their order.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, records []domain.Property) (int64, error) {
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("CatalogRepository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM properties`); err != nil {
		return 0, fmt.Errorf("CatalogRepository: failed to clear properties: %w", err)
	}

	rows := make([][]interface{}, 0, len(records))
	for i, p := range records {
		images := p.Images
		if images == nil {
			images = []string{}
		}
		rows = append(rows, []interface{}{
			p.ID, i, p.Title, p.Description, string(p.Type), p.Price, p.Neighborhood, string(p.City),
			p.Surface, p.Rooms, p.Bathrooms, images, p.Available, p.Verified,
			p.OwnerName, p.OwnerPhone, p.OwnerWhatsApp, p.CreatedAt, p.UpdatedAt,
		})
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"properties"},
		[]string{
			"id", "position", "title", "description", "property_type", "price", "neighborhood", "city",
			"surface", "rooms", "bathrooms", "images", "available", "verified",
			"owner_name", "owner_phone", "owner_whatsapp", "created_at", "updated_at",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("CatalogRepository: failed to copy properties: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("CatalogRepository: failed to commit: %w", err)
	}
	return copied, nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var (
		p            domain.Property
		propertyType string
		city         string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &propertyType, &p.Price, &p.Neighborhood, &city,
		&p.Surface, &p.Rooms, &p.Bathrooms, &p.Images, &p.Available, &p.Verified,
		&p.OwnerName, &p.OwnerPhone, &p.OwnerWhatsApp, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.Type = domain.PropertyType(propertyType)
	p.City = domain.City(city)
	return p, nil
}
