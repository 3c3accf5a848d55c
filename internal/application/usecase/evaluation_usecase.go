package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/confetex/ordenes-api/internal/application/dto"
	"github.com/confetex/ordenes-api/internal/domain"
	"github.com/confetex/ordenes-api/internal/domain/entity"
	"github.com/confetex/ordenes-api/internal/domain/repository"
)

// EvaluationUseCase registro y agregación de evaluaciones de desempeño.
// Las evaluaciones son inmutables: se validan antes de escribir y después
// solo se leen.
type EvaluationUseCase struct {
	contractors repository.ContractorRepository
	evals       repository.EvaluationRepository
}

// NewEvaluationUseCase construye el caso de uso.
func NewEvaluationUseCase(contractors repository.ContractorRepository, evals repository.EvaluationRepository) *EvaluationUseCase {
	return &EvaluationUseCase{contractors: contractors, evals: evals}
}

func ratingInRange(r int) bool { return r >= 1 && r <= 5 }

// Submit registra una evaluación firmada por evaluatorID. Rating debe estar
// en [1,5]; los subpuntajes opcionales, si vienen, también (regla endurecida
// a propósito: el log es append-only y un subpuntaje fuera de rango no se
// puede corregir después).
func (uc *EvaluationUseCase) Submit(evaluatorID, contractorID string, in dto.SubmitEvaluationRequest) (*dto.EvaluationResponse, error) {
	if !ratingInRange(in.Rating) {
		return nil, domain.ErrInvalidInput
	}
	for _, sub := range []*int{in.Quality, in.Timing, in.Price, in.Cooperation} {
		if sub != nil && !ratingInRange(*sub) {
			return nil, domain.ErrInvalidInput
		}
	}
	c, err := uc.contractors.GetByID(contractorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	ev := &entity.Evaluation{
		ID:           uuid.New().String(),
		ContractorID: contractorID,
		EvaluatorID:  evaluatorID,
		Rating:       in.Rating,
		Quality:      in.Quality,
		Timing:       in.Timing,
		Price:        in.Price,
		Cooperation:  in.Cooperation,
		Comments:     in.Comments,
		CreatedAt:    time.Now(),
	}
	if err := uc.evals.Create(ev); err != nil {
		return nil, err
	}
	resp := toEvaluationResponse(ev)
	return &resp, nil
}

// Average promedio aritmético de rating redondeado a un decimal.
// Sin evaluaciones devuelve Average=nil, nunca cero.
func (uc *EvaluationUseCase) Average(contractorID string) (*dto.EvaluationSummaryResponse, error) {
	c, err := uc.contractors.GetByID(contractorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	avg, count, err := uc.evals.Average(contractorID)
	if err != nil {
		return nil, err
	}
	out := &dto.EvaluationSummaryResponse{ContractorID: contractorID, Count: count}
	if count > 0 {
		f, _ := avg.Round(1).Float64()
		out.Average = &f
	}
	return out, nil
}

// History historial paginado, más reciente primero.
func (uc *EvaluationUseCase) History(contractorID string, page, limit int) (*dto.EvaluationHistoryResponse, error) {
	c, err := uc.contractors.GetByID(contractorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	total, err := uc.evals.Count(contractorID)
	if err != nil {
		return nil, err
	}
	list, err := uc.evals.ListPage(contractorID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EvaluationResponse, 0, len(list))
	for _, ev := range list {
		items = append(items, toEvaluationResponse(ev))
	}
	return &dto.EvaluationHistoryResponse{
		Evaluations: items,
		Pagination: dto.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

func toEvaluationResponse(ev *entity.Evaluation) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		ID:           ev.ID,
		ContractorID: ev.ContractorID,
		EvaluatorID:  ev.EvaluatorID,
		Rating:       ev.Rating,
		Quality:      ev.Quality,
		Timing:       ev.Timing,
		Price:        ev.Price,
		Cooperation:  ev.Cooperation,
		Comments:     ev.Comments,
		CreatedAt:    ev.CreatedAt,
	}
}
