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

var _ repository.ContractorRepository = (*ContractorRepo)(nil)

// ContractorRepo implementación del puerto ContractorRepository sobre PostgreSQL.
type ContractorRepo struct {
	pool *pgxpool.Pool
}

// NewContractorRepository construye el adaptador de persistencia para contratistas.
func NewContractorRepository(pool *pgxpool.Pool) *ContractorRepo {
	return &ContractorRepo{pool: pool}
}

// Create persiste un nuevo contratista. El constraint UNIQUE(name) respalda la
// unicidad global del nombre; una violación se traduce a ErrDuplicate.
func (r *ContractorRepo) Create(c *entity.Contractor) error {
	query := `
		INSERT INTO contractors (id, name, type, phone, address, notes, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, string(c.Type), c.Phone, c.Address, c.Notes, c.IsActive,
		c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contractor: %w", err)
	}
	return nil
}

// GetByID obtiene un contratista por ID.
func (r *ContractorRepo) GetByID(id string) (*entity.Contractor, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// FindByName busca por nombre exacto, activo o no.
func (r *ContractorRepo) FindByName(name string) (*entity.Contractor, error) {
	return r.findOne(`WHERE name = $1`, name)
}

func (r *ContractorRepo) findOne(where string, arg any) (*entity.Contractor, error) {
	query := `
		SELECT id, name, type, phone, address, notes, is_active, created_by, created_at, updated_at
		FROM contractors ` + where
	var c entity.Contractor
	var typ string
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &typ, &c.Phone, &c.Address, &c.Notes, &c.IsActive,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contractor: %w", err)
	}
	c.Type = catalog.ContractorType(typ)
	return &c, nil
}

// Update persiste tipo, datos de contacto y flag de actividad.
func (r *ContractorRepo) Update(c *entity.Contractor) error {
	query := `
		UPDATE contractors SET type = $2, phone = $3, address = $4, notes = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, string(c.Type), c.Phone, c.Address, c.Notes, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contractor: %w", err)
	}
	return nil
}

// List lista contratistas ordenados por nombre con filtros opcionales.
func (r *ContractorRepo) List(typ *catalog.ContractorType, activeOnly *bool) ([]*entity.Contractor, error) {
	query := `
		SELECT id, name, type, phone, address, notes, is_active, created_by, created_at, updated_at
		FROM contractors
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY name`
	var typArg *string
	if typ != nil {
		s := string(*typ)
		typArg = &s
	}
	rows, err := r.pool.Query(context.Background(), query, typArg, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contractor
	for rows.Next() {
		var c entity.Contractor
		var t string
		if err := rows.Scan(&c.ID, &c.Name, &t, &c.Phone, &c.Address, &c.Notes, &c.IsActive,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contractor: %w", err)
		}
		c.Type = catalog.ContractorType(t)
		list = append(list, &c)
	}
	return list, rows.Err()
}
