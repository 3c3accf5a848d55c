package repository

import (
	"github.com/shopspring/decimal"

	"github.com/confetex/ordenes-api/internal/domain/entity"
)

// EvaluationRepository puerto de persistencia para evaluaciones.
// El contrato es append-only: no existen Update ni Delete.
type EvaluationRepository interface {
	Create(ev *entity.Evaluation) error
	// List devuelve el historial completo, más reciente primero.
	List(contractorID string) ([]*entity.Evaluation, error)
	// ListPage devuelve una página del historial, más reciente primero.
	ListPage(contractorID string, limit, offset int) ([]*entity.Evaluation, error)
	Count(contractorID string) (int, error)
	// Average devuelve el promedio de rating y la cantidad de evaluaciones.
	// Con count=0 el promedio no es significativo.
	Average(contractorID string) (decimal.Decimal, int, error)
}
