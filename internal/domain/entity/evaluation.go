package entity

import "time"

// Evaluation calificación de desempeño de un contratista. Es append-only:
// una vez registrada no se actualiza ni se borra.
type Evaluation struct {
	ID           string
	ContractorID string
	EvaluatorID  string
	Rating       int // 1..5, obligatorio
	Quality      *int
	Timing       *int
	Price        *int
	Cooperation  *int
	Comments     string
	CreatedAt    time.Time
}
