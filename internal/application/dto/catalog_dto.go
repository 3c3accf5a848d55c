package dto

import "time"

// CatalogEntryRequest entrada para crear o renombrar una entrada de catálogo.
type CatalogEntryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Value string `json:"value" validate:"omitempty,max=500"`
}

// CatalogEntryResponse salida de una entrada de catálogo.
type CatalogEntryResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogListResponse listado de entradas de una categoría.
type CatalogListResponse struct {
	Category string                 `json:"category"`
	Items    []CatalogEntryResponse `json:"items"`
}

// ReconcileResponse resumen de una reconciliación catálogo -> registro.
type ReconcileResponse struct {
	Category    string `json:"category"`
	Upserted    int    `json:"upserted"`
	Deactivated int    `json:"deactivated"`
	Failed      int    `json:"failed"`
}
