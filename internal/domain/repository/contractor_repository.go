package repository

import (
	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
)

// ContractorRepository puerto de persistencia del registro de contratistas.
// La sincronización de catálogo y el flujo de gestión directa escriben por
// el mismo puerto; ambos respetan la unicidad global del nombre y el
// borrado lógico (nunca se elimina una fila).
type ContractorRepository interface {
	// Create inserta; devuelve domain.ErrDuplicate si el nombre ya existe
	// (activo o no).
	Create(c *entity.Contractor) error
	GetByID(id string) (*entity.Contractor, error)
	// FindByName busca por nombre exacto, sin filtrar por estado.
	FindByName(name string) (*entity.Contractor, error)
	Update(c *entity.Contractor) error
	// List devuelve contratistas ordenados por nombre. typ=nil no filtra por
	// tipo; activeOnly=nil no filtra por estado.
	List(typ *catalog.ContractorType, activeOnly *bool) ([]*entity.Contractor, error)
}
