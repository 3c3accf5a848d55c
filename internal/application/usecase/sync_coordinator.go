package usecase

import (
	"github.com/rs/zerolog"

	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
)

// contractorRegistry contrato mínimo que necesita el coordinador para propagar
// cambios de catálogo al registro. Lo implementa *ContractorUseCase; el uso de
// interfaz permite probar el coordinador con un registro falso.
type contractorRegistry interface {
	UpsertByName(name string, typ catalog.ContractorType) error
	DeactivateByName(name string, typ catalog.ContractorType) error
}

// SyncCoordinator propaga mutaciones de los cuatro catálogos asociados a
// contratistas hacia el registro. La propagación es best-effort y NO
// transaccional: la escritura de catálogo ya está confirmada cuando se invoca,
// y un fallo aquí se registra como warning sin afectar la respuesta al cliente.
// La divergencia resultante se corrige con Reconcile.
type SyncCoordinator struct {
	registry contractorRegistry
	log      zerolog.Logger
}

// NewSyncCoordinator construye el coordinador.
func NewSyncCoordinator(registry contractorRegistry, log zerolog.Logger) *SyncCoordinator {
	return &SyncCoordinator{registry: registry, log: log}
}

// AfterCreate propaga un alta de catálogo: upsert del contratista homónimo.
// Categorías no mapeadas no hacen nada.
func (s *SyncCoordinator) AfterCreate(cat catalog.Category, name string) {
	typ, ok := cat.ContractorType()
	if !ok {
		return
	}
	if err := s.registry.UpsertByName(name, typ); err != nil {
		s.warn("create", cat, name, typ, err)
	}
}

// AfterRename propaga un renombre. El orden importa: primero se activa el
// nombre nuevo y después se desactiva el viejo, para no dejar una ventana sin
// ningún contratista activo para esa entidad real. Cada paso falla por
// separado; un fallo en el primero no impide intentar el segundo.
func (s *SyncCoordinator) AfterRename(cat catalog.Category, oldName, newName string) {
	typ, ok := cat.ContractorType()
	if !ok {
		return
	}
	if err := s.registry.UpsertByName(newName, typ); err != nil {
		s.warn("rename-upsert", cat, newName, typ, err)
	}
	if err := s.registry.DeactivateByName(oldName, typ); err != nil {
		s.warn("rename-deactivate", cat, oldName, typ, err)
	}
}

// AfterDelete propaga una baja lógica: desactiva el contratista homónimo del
// tipo mapeado. Si el nombre pertenece a otro tipo, el registro lo ignora.
func (s *SyncCoordinator) AfterDelete(cat catalog.Category, name string) {
	typ, ok := cat.ContractorType()
	if !ok {
		return
	}
	if err := s.registry.DeactivateByName(name, typ); err != nil {
		s.warn("delete", cat, name, typ, err)
	}
}

// Reconcile recalcula el estado esperado del registro para una categoría a
// partir de sus entradas actuales: activa -> upsert, inactiva -> deactivate.
// Es idempotente y re-ejecutable; sirve para sanar la divergencia que deja una
// sincronización inline fallida. A diferencia de los hooks After*, los fallos
// se cuentan y se devuelven al invocador además de loguearse.
//
// Las bajas van en una primera pasada y las altas en una segunda: el borrado
// lógico libera el nombre, así que una entrada inactiva puede convivir con una
// activa homónima, y el orden de lectura entre ambas no está garantizado. Con
// las altas al final, la entrada activa siempre tiene la última palabra.
func (s *SyncCoordinator) Reconcile(cat catalog.Category, entries []*entity.CatalogEntry) (upserted, deactivated, failed int) {
	typ, ok := cat.ContractorType()
	if !ok {
		return 0, 0, 0
	}
	for _, e := range entries {
		if e.IsActive {
			continue
		}
		if err := s.registry.DeactivateByName(e.Name, typ); err != nil {
			s.warn("reconcile-deactivate", cat, e.Name, typ, err)
			failed++
			continue
		}
		deactivated++
	}
	for _, e := range entries {
		if !e.IsActive {
			continue
		}
		if err := s.registry.UpsertByName(e.Name, typ); err != nil {
			s.warn("reconcile-upsert", cat, e.Name, typ, err)
			failed++
			continue
		}
		upserted++
	}
	return upserted, deactivated, failed
}

func (s *SyncCoordinator) warn(op string, cat catalog.Category, name string, typ catalog.ContractorType, err error) {
	s.log.Warn().
		Err(err).
		Str("op", op).
		Str("category", cat.Slug()).
		Str("name", name).
		Str("type", string(typ)).
		Msg("sincronización catálogo -> registro falló; catálogo y registro quedan divergentes")
}
