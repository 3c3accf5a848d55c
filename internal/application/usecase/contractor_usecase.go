package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/confetex/ordenes-api/internal/application/dto"
	"github.com/confetex/ordenes-api/internal/domain"
	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
	"github.com/confetex/ordenes-api/internal/domain/repository"
)

// recentEvaluations máximo de evaluaciones adjuntas en vistas de listado.
const recentEvaluations = 5

// ContractorUseCase operaciones sobre el registro canónico de contratistas.
// Escriben por aquí tanto el flujo de gestión directa como el SyncCoordinator;
// ambos respetan la unicidad global del nombre y el borrado lógico.
type ContractorUseCase struct {
	repo  repository.ContractorRepository
	evals repository.EvaluationRepository
}

// NewContractorUseCase construye el caso de uso.
func NewContractorUseCase(repo repository.ContractorRepository, evals repository.EvaluationRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo, evals: evals}
}

// UpsertByName alta/reactivación por nombre, usada por la sincronización.
// Si el nombre ya existe (activo o no) se le asigna el tipo recibido
// (last-write-wins) y se activa; si no, se crea activo con los campos
// opcionales vacíos. Idempotente.
func (uc *ContractorUseCase) UpsertByName(name string, typ catalog.ContractorType) error {
	existing, err := uc.repo.FindByName(name)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing != nil {
		existing.Type = typ
		existing.IsActive = true
		existing.UpdatedAt = now
		return uc.repo.Update(existing)
	}
	c := &entity.Contractor{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      typ,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.repo.Create(c)
	if errors.Is(err, domain.ErrDuplicate) {
		// Perdimos la carrera check-then-insert contra otra petición:
		// la fila ya existe, reintentar como actualización.
		raced, ferr := uc.repo.FindByName(name)
		if ferr != nil || raced == nil {
			return err
		}
		raced.Type = typ
		raced.IsActive = true
		raced.UpdatedAt = now
		return uc.repo.Update(raced)
	}
	return err
}

// DeactivateByName baja lógica por nombre, usada por la sincronización.
// No hace nada si el nombre no existe o si pertenece a un tipo distinto del
// esperado: así el borrado de un catálogo FABRIC no desactiva a un contratista
// PRODUCTION homónimo.
func (uc *ContractorUseCase) DeactivateByName(name string, typ catalog.ContractorType) error {
	existing, err := uc.repo.FindByName(name)
	if err != nil {
		return err
	}
	if existing == nil || existing.Type != typ {
		return nil
	}
	existing.IsActive = false
	existing.UpdatedAt = time.Now()
	return uc.repo.Update(existing)
}

// Create flujo de gestión directa: alta con datos de contacto completos.
// actorID queda registrado como creador.
func (uc *ContractorUseCase) Create(actorID string, in dto.CreateContractorRequest) (*dto.ContractorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	typ, ok := catalog.ParseContractorType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Contractor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      typ,
		Phone:     in.Phone,
		Address:   in.Address,
		Notes:     in.Notes,
		IsActive:  true,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	resp := toContractorResponse(c, 0, nil)
	return &resp, nil
}

// List lista contratistas con filtros opcionales, cada uno anotado con el
// total de evaluaciones y las 5 más recientes (lecturas por contratista,
// igual que el origen).
func (uc *ContractorUseCase) List(typeFilter string, activeOnly *bool) (*dto.ContractorListResponse, error) {
	var typ *catalog.ContractorType
	if typeFilter != "" {
		t, ok := catalog.ParseContractorType(typeFilter)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		typ = &t
	}
	list, err := uc.repo.List(typ, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractorResponse, 0, len(list))
	for _, c := range list {
		count, err := uc.evals.Count(c.ID)
		if err != nil {
			return nil, err
		}
		recent, err := uc.evals.ListPage(c.ID, recentEvaluations, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, toContractorResponse(c, count, recent))
	}
	return &dto.ContractorListResponse{Contractors: out}, nil
}

// GetByID vista de detalle: contratista con su historial completo de
// evaluaciones, incluso si está desactivado (consulta histórica).
func (uc *ContractorUseCase) GetByID(id string) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	history, err := uc.evals.List(c.ID)
	if err != nil {
		return nil, err
	}
	resp := toContractorResponse(c, len(history), history)
	return &resp, nil
}

func toContractorResponse(c *entity.Contractor, count int, evals []*entity.Evaluation) dto.ContractorResponse {
	items := make([]dto.EvaluationResponse, 0, len(evals))
	for _, ev := range evals {
		items = append(items, toEvaluationResponse(ev))
	}
	return dto.ContractorResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            string(c.Type),
		Phone:           c.Phone,
		Address:         c.Address,
		Notes:           c.Notes,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		EvaluationCount: count,
		Evaluations:     items,
	}
}
