package entity

import (
	"time"

	"github.com/confetex/ordenes-api/internal/domain/catalog"
)

// Contractor registro canónico y deduplicado de una parte externa
// (proveedor de tela, taller de confección, empaque o lavandería).
// El nombre es único globalmente, sin importar el tipo ni el estado.
type Contractor struct {
	ID        string
	Name      string
	Type      catalog.ContractorType
	Phone     string
	Address   string
	Notes     string
	IsActive  bool
	CreatedBy string // vacío cuando lo crea la sincronización de catálogo
	CreatedAt time.Time
	UpdatedAt time.Time
}
