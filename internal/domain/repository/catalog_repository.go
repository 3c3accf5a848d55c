package repository

import (
	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
)

// CatalogEntryRepository puerto de persistencia para las entradas de catálogo.
// El contrato no expone borrado físico: la única forma de retirar una entrada
// es persistirla con IsActive=false vía Update.
type CatalogEntryRepository interface {
	// List devuelve las entradas de la categoría ordenadas por nombre.
	// Con includeInactive=false solo las activas.
	List(category catalog.Category, includeInactive bool) ([]*entity.CatalogEntry, error)
	GetByID(category catalog.Category, id string) (*entity.CatalogEntry, error)
	// FindActiveByName busca una entrada activa por nombre dentro de la categoría.
	FindActiveByName(category catalog.Category, name string) (*entity.CatalogEntry, error)
	// Create inserta; devuelve domain.ErrDuplicate si el nombre ya está activo
	// en la categoría (respaldo del constraint único parcial).
	Create(e *entity.CatalogEntry) error
	// Update persiste nombre, valor y flag de actividad.
	Update(e *entity.CatalogEntry) error
}
