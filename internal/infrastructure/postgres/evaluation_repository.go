package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/confetex/ordenes-api/internal/domain/entity"
	"github.com/confetex/ordenes-api/internal/domain/repository"
)

var _ repository.EvaluationRepository = (*EvaluationRepo)(nil)

// EvaluationRepo implementación del puerto EvaluationRepository sobre PostgreSQL.
// Solo inserta y lee: las evaluaciones son inmutables.
type EvaluationRepo struct {
	pool *pgxpool.Pool
}

// NewEvaluationRepository construye el adaptador de persistencia para evaluaciones.
func NewEvaluationRepository(pool *pgxpool.Pool) *EvaluationRepo {
	return &EvaluationRepo{pool: pool}
}

// Create persiste una nueva evaluación.
func (r *EvaluationRepo) Create(ev *entity.Evaluation) error {
	query := `
		INSERT INTO evaluations (id, contractor_id, evaluator_id, rating, quality, timing, price, cooperation, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		ev.ID, ev.ContractorID, ev.EvaluatorID, ev.Rating,
		ev.Quality, ev.Timing, ev.Price, ev.Cooperation, ev.Comments, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

const evaluationColumns = `id, contractor_id, evaluator_id, rating, quality, timing, price, cooperation, comments, created_at`

// List devuelve el historial completo del contratista, más reciente primero.
func (r *EvaluationRepo) List(contractorID string) ([]*entity.Evaluation, error) {
	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations WHERE contractor_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, contractorID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()
	return scanEvaluations(rows)
}

// ListPage devuelve una página del historial, más reciente primero.
func (r *EvaluationRepo) ListPage(contractorID string, limit, offset int) ([]*entity.Evaluation, error) {
	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations WHERE contractor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, contractorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list evaluations page: %w", err)
	}
	defer rows.Close()
	return scanEvaluations(rows)
}

// Count cuenta las evaluaciones del contratista.
func (r *EvaluationRepo) Count(contractorID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM evaluations WHERE contractor_id = $1`, contractorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return n, nil
}

// Average calcula el promedio de rating en SQL. El NUMERIC llega como
// shopspring/decimal gracias al codec registrado en el pool.
func (r *EvaluationRepo) Average(contractorID string) (decimal.Decimal, int, error) {
	var avg decimal.Decimal
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COALESCE(AVG(rating), 0)::numeric, COUNT(*) FROM evaluations WHERE contractor_id = $1`,
		contractorID).Scan(&avg, &n)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, n, nil
}

func scanEvaluations(rows pgx.Rows) ([]*entity.Evaluation, error) {
	var list []*entity.Evaluation
	for rows.Next() {
		var ev entity.Evaluation
		if err := rows.Scan(&ev.ID, &ev.ContractorID, &ev.EvaluatorID, &ev.Rating,
			&ev.Quality, &ev.Timing, &ev.Price, &ev.Cooperation, &ev.Comments, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
