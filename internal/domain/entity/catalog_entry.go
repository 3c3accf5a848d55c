package entity

import (
	"time"

	"github.com/confetex/ordenes-api/internal/domain/catalog"
)

// CatalogEntry entrada de uno de los catálogos configurables que pueblan los
// formularios de pedido. Nunca se elimina físicamente: solo se desactiva.
type CatalogEntry struct {
	ID        string
	Category  catalog.Category
	Name      string
	Value     string // valor opcional asociado (código, composición, etc.)
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
