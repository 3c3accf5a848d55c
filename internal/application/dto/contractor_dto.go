package dto

import "time"

// CreateContractorRequest entrada del flujo de gestión directa de contratistas.
type CreateContractorRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Type    string `json:"type" validate:"required,oneof=FABRIC PRODUCTION PACKAGING STONE_WASH"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Notes   string `json:"notes" validate:"omitempty,max=2000"`
}

// ContractorResponse salida de un contratista. En listados Evaluations trae
// como máximo las 5 más recientes; en la vista de detalle el historial completo.
type ContractorResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Type            string               `json:"type"`
	Phone           string               `json:"phone"`
	Address         string               `json:"address"`
	Notes           string               `json:"notes"`
	IsActive        bool                 `json:"is_active"`
	CreatedAt       time.Time            `json:"created_at"`
	EvaluationCount int                  `json:"evaluation_count"`
	Evaluations     []EvaluationResponse `json:"evaluations"`
}

// ContractorListResponse listado de contratistas.
type ContractorListResponse struct {
	Contractors []ContractorResponse `json:"contractors"`
}

// SubmitEvaluationRequest entrada para calificar a un contratista.
// Rating es obligatorio; los subpuntajes son opcionales pero, si vienen,
// deben estar también en [1,5].
type SubmitEvaluationRequest struct {
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Quality     *int   `json:"quality" validate:"omitempty,min=1,max=5"`
	Timing      *int   `json:"timing" validate:"omitempty,min=1,max=5"`
	Price       *int   `json:"price" validate:"omitempty,min=1,max=5"`
	Cooperation *int   `json:"cooperation" validate:"omitempty,min=1,max=5"`
	Comments    string `json:"comments" validate:"omitempty,max=2000"`
}

// EvaluationResponse salida de una evaluación.
type EvaluationResponse struct {
	ID           string    `json:"id"`
	ContractorID string    `json:"contractor_id"`
	EvaluatorID  string    `json:"evaluator_id"`
	Rating       int       `json:"rating"`
	Quality      *int      `json:"quality,omitempty"`
	Timing       *int      `json:"timing,omitempty"`
	Price        *int      `json:"price,omitempty"`
	Cooperation  *int      `json:"cooperation,omitempty"`
	Comments     string    `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
}

// EvaluationHistoryResponse página del historial de evaluaciones.
type EvaluationHistoryResponse struct {
	Evaluations []EvaluationResponse `json:"evaluations"`
	Pagination  PaginationResponse   `json:"pagination"`
}

// EvaluationSummaryResponse promedio de calificaciones. Average es nil cuando
// el contratista no tiene evaluaciones (centinela "sin datos", nunca cero).
type EvaluationSummaryResponse struct {
	ContractorID string   `json:"contractor_id"`
	Count        int      `json:"count"`
	Average      *float64 `json:"average"`
}
