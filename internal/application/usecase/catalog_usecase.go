package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/confetex/ordenes-api/internal/application/dto"
	"github.com/confetex/ordenes-api/internal/domain"
	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
	"github.com/confetex/ordenes-api/internal/domain/repository"
)

// CatalogUseCase operaciones sobre los ocho catálogos configurables.
// La mutación de catálogo se aplica y confirma primero; recién después se
// dispara la sincronización hacia el registro de contratistas, cuyo resultado
// nunca altera la respuesta de la operación primaria.
type CatalogUseCase struct {
	repo repository.CatalogEntryRepository
	sync *SyncCoordinator
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogEntryRepository, sync *SyncCoordinator) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, sync: sync}
}

// List lista las entradas de la categoría ordenadas por nombre.
func (uc *CatalogUseCase) List(cat catalog.Category, includeInactive bool) (*dto.CatalogListResponse, error) {
	list, err := uc.repo.List(cat, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toCatalogEntryResponse(e))
	}
	return &dto.CatalogListResponse{Category: cat.Slug(), Items: items}, nil
}

// Create crea una entrada. Falla con ErrDuplicate si ya hay una entrada
// activa con ese nombre en la categoría (chequeo previo más el constraint
// único como respaldo ante carreras).
func (uc *CatalogUseCase) Create(actorID string, cat catalog.Category, in dto.CatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindActiveByName(cat, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	e := &entity.CatalogEntry{
		ID:        uuid.New().String(),
		Category:  cat,
		Name:      in.Name,
		Value:     in.Value,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	uc.sync.AfterCreate(cat, e.Name)
	resp := toCatalogEntryResponse(e)
	return &resp, nil
}

// Rename actualiza nombre y/o valor de una entrada. Si el nombre cambia se
// dispara la sincronización de renombre (activar nombre nuevo, desactivar el
// viejo); un cambio solo de valor no toca el registro.
func (uc *CatalogUseCase) Rename(actorID string, cat catalog.Category, id string, in dto.CatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	e, err := uc.repo.GetByID(cat, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	previousName := e.Name
	if in.Name != previousName {
		collision, err := uc.repo.FindActiveByName(cat, in.Name)
		if err != nil {
			return nil, err
		}
		if collision != nil && collision.ID != e.ID {
			return nil, domain.ErrDuplicate
		}
	}
	e.Name = in.Name
	e.Value = in.Value
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	if e.Name != previousName {
		uc.sync.AfterRename(cat, previousName, e.Name)
	}
	resp := toCatalogEntryResponse(e)
	return &resp, nil
}

// SoftDelete baja lógica de una entrada. Idempotente sobre una entrada ya
// inactiva (no re-dispara sincronización). No existe borrado físico.
func (uc *CatalogUseCase) SoftDelete(actorID string, cat catalog.Category, id string) error {
	e, err := uc.repo.GetByID(cat, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if !e.IsActive {
		return nil
	}
	e.IsActive = false
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return err
	}
	uc.sync.AfterDelete(cat, e.Name)
	return nil
}

// Reconcile recorre todas las entradas (activas e inactivas) de una categoría
// mapeada y re-deriva el estado del registro. Falla con ErrNotSyncable para
// las cuatro categorías sin contratista asociado.
func (uc *CatalogUseCase) Reconcile(cat catalog.Category) (*dto.ReconcileResponse, error) {
	if _, ok := cat.ContractorType(); !ok {
		return nil, domain.ErrNotSyncable
	}
	entries, err := uc.repo.List(cat, true)
	if err != nil {
		return nil, err
	}
	upserted, deactivated, failed := uc.sync.Reconcile(cat, entries)
	return &dto.ReconcileResponse{
		Category:    cat.Slug(),
		Upserted:    upserted,
		Deactivated: deactivated,
		Failed:      failed,
	}, nil
}

func toCatalogEntryResponse(e *entity.CatalogEntry) dto.CatalogEntryResponse {
	return dto.CatalogEntryResponse{
		ID:        e.ID,
		Category:  e.Category.Slug(),
		Name:      e.Name,
		Value:     e.Value,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
