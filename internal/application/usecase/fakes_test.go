package usecase_test

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/confetex/ordenes-api/internal/domain"
	"github.com/confetex/ordenes-api/internal/domain/catalog"
	"github.com/confetex/ordenes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Implementan la misma
// semántica que los adaptadores de PostgreSQL (unicidad, orden por nombre,
// historial más reciente primero) para que los casos de uso se prueben
// sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

var errStorage = errors.New("storage no disponible")

type fakeCatalogRepo struct {
	entries map[string]*entity.CatalogEntry // por ID
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{entries: map[string]*entity.CatalogEntry{}}
}

func (r *fakeCatalogRepo) List(cat catalog.Category, includeInactive bool) ([]*entity.CatalogEntry, error) {
	var out []*entity.CatalogEntry
	for _, e := range r.entries {
		if e.Category != cat {
			continue
		}
		if !includeInactive && !e.IsActive {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCatalogRepo) GetByID(cat catalog.Category, id string) (*entity.CatalogEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.Category != cat {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeCatalogRepo) FindActiveByName(cat catalog.Category, name string) (*entity.CatalogEntry, error) {
	for _, e := range r.entries {
		if e.Category == cat && e.Name == name && e.IsActive {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) Create(e *entity.CatalogEntry) error {
	if existing, _ := r.FindActiveByName(e.Category, e.Name); existing != nil {
		return domain.ErrDuplicate
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) Update(e *entity.CatalogEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return nil
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

type fakeContractorRepo struct {
	contractors map[string]*entity.Contractor // por ID
	failWrites  bool                          // simula storage caído para la sincronización
}

func newFakeContractorRepo() *fakeContractorRepo {
	return &fakeContractorRepo{contractors: map[string]*entity.Contractor{}}
}

func (r *fakeContractorRepo) Create(c *entity.Contractor) error {
	if r.failWrites {
		return errStorage
	}
	for _, existing := range r.contractors {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.contractors[c.ID] = &cp
	return nil
}

func (r *fakeContractorRepo) GetByID(id string) (*entity.Contractor, error) {
	c, ok := r.contractors[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractorRepo) FindByName(name string) (*entity.Contractor, error) {
	for _, c := range r.contractors {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContractorRepo) Update(c *entity.Contractor) error {
	if r.failWrites {
		return errStorage
	}
	if _, ok := r.contractors[c.ID]; !ok {
		return nil
	}
	cp := *c
	r.contractors[c.ID] = &cp
	return nil
}

func (r *fakeContractorRepo) List(typ *catalog.ContractorType, activeOnly *bool) ([]*entity.Contractor, error) {
	var out []*entity.Contractor
	for _, c := range r.contractors {
		if typ != nil && c.Type != *typ {
			continue
		}
		if activeOnly != nil && c.IsActive != *activeOnly {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeEvaluationRepo struct {
	evals []*entity.Evaluation // en orden de inserción
}

func newFakeEvaluationRepo() *fakeEvaluationRepo { return &fakeEvaluationRepo{} }

func (r *fakeEvaluationRepo) Create(ev *entity.Evaluation) error {
	cp := *ev
	r.evals = append(r.evals, &cp)
	return nil
}

// byContractor devuelve las evaluaciones del contratista, más reciente primero
// (orden de inserción invertido, estable aunque los timestamps coincidan).
func (r *fakeEvaluationRepo) byContractor(contractorID string) []*entity.Evaluation {
	var out []*entity.Evaluation
	for i := len(r.evals) - 1; i >= 0; i-- {
		if r.evals[i].ContractorID == contractorID {
			cp := *r.evals[i]
			out = append(out, &cp)
		}
	}
	return out
}

func (r *fakeEvaluationRepo) List(contractorID string) ([]*entity.Evaluation, error) {
	return r.byContractor(contractorID), nil
}

func (r *fakeEvaluationRepo) ListPage(contractorID string, limit, offset int) ([]*entity.Evaluation, error) {
	all := r.byContractor(contractorID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeEvaluationRepo) Count(contractorID string) (int, error) {
	return len(r.byContractor(contractorID)), nil
}

func (r *fakeEvaluationRepo) Average(contractorID string) (decimal.Decimal, int, error) {
	all := r.byContractor(contractorID)
	if len(all) == 0 {
		return decimal.Zero, 0, nil
	}
	sum := decimal.Zero
	for _, ev := range all {
		sum = sum.Add(decimal.NewFromInt(int64(ev.Rating)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(all)))), len(all), nil
}

// fakeRegistry registro falso para probar el coordinador de sincronización
// de forma aislada: graba las operaciones en orden y puede fallar a demanda.
type fakeRegistry struct {
	ops []string
	err error
}

func (r *fakeRegistry) UpsertByName(name string, typ catalog.ContractorType) error {
	r.ops = append(r.ops, fmt.Sprintf("upsert:%s:%s", name, typ))
	return r.err
}

func (r *fakeRegistry) DeactivateByName(name string, typ catalog.ContractorType) error {
	r.ops = append(r.ops, fmt.Sprintf("deactivate:%s:%s", name, typ))
	return r.err
}
