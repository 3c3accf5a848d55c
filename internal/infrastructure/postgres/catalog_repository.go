package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/confetex/ordenes-api/internal/domain"
	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
	"github.com/confetex/ordenes-api/internal/domain/repository"
)

var _ repository.CatalogEntryRepository = (*CatalogEntryRepo)(nil)

// CatalogEntryRepo implementación del puerto CatalogEntryRepository sobre PostgreSQL.
// Una sola tabla para las ocho categorías; la categoría se guarda como slug.
type CatalogEntryRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogEntryRepository construye el adaptador de persistencia para catálogos.
func NewCatalogEntryRepository(pool *pgxpool.Pool) *CatalogEntryRepo {
	return &CatalogEntryRepo{pool: pool}
}

// Create persiste una nueva entrada de catálogo.
// La unicidad por (categoría, nombre) entre entradas activas la respalda el
// índice único parcial; una violación se traduce a ErrDuplicate.
func (r *CatalogEntryRepo) Create(e *entity.CatalogEntry) error {
	query := `
		INSERT INTO catalog_entries (id, category, name, value, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Category.Slug(), e.Name, e.Value, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID dentro de su categoría.
func (r *CatalogEntryRepo) GetByID(category catalog.Category, id string) (*entity.CatalogEntry, error) {
	query := `
		SELECT id, name, value, is_active, created_at, updated_at
		FROM catalog_entries WHERE category = $1 AND id = $2`
	var e entity.CatalogEntry
	e.Category = category
	err := r.pool.QueryRow(context.Background(), query, category.Slug(), id).Scan(
		&e.ID, &e.Name, &e.Value, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog entry: %w", err)
	}
	return &e, nil
}

// FindActiveByName busca una entrada activa por nombre en la categoría.
func (r *CatalogEntryRepo) FindActiveByName(category catalog.Category, name string) (*entity.CatalogEntry, error) {
	query := `
		SELECT id, name, value, is_active, created_at, updated_at
		FROM catalog_entries WHERE category = $1 AND name = $2 AND is_active`
	var e entity.CatalogEntry
	e.Category = category
	err := r.pool.QueryRow(context.Background(), query, category.Slug(), name).Scan(
		&e.ID, &e.Name, &e.Value, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find catalog entry by name: %w", err)
	}
	return &e, nil
}

// Update persiste nombre, valor y flag de actividad.
func (r *CatalogEntryRepo) Update(e *entity.CatalogEntry) error {
	query := `
		UPDATE catalog_entries SET name = $3, value = $4, is_active = $5, updated_at = $6
		WHERE category = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		e.Category.Slug(), e.ID, e.Name, e.Value, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update catalog entry: %w", err)
	}
	return nil
}

// List lista las entradas de la categoría ordenadas por nombre.
func (r *CatalogEntryRepo) List(category catalog.Category, includeInactive bool) ([]*entity.CatalogEntry, error) {
	query := `
		SELECT id, name, value, is_active, created_at, updated_at
		FROM catalog_entries WHERE category = $1 AND ($2 OR is_active)
		ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, category.Slug(), includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogEntry
	for rows.Next() {
		var e entity.CatalogEntry
		e.Category = category
		if err := rows.Scan(&e.ID, &e.Name, &e.Value, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
