package usecase_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confetex/ordenes-api/internal/application/dto"
	"github.com/confetex/ordenes-api/internal/application/usecase"
	"github.com/confetex/ordenes-api/internal/domain"
	"github.com/confetex/ordenes-api/internal/domain/catalog"
)

const testActor = "00000000-0000-0000-0000-000000000099"

func newCatalogUC(reg *fakeRegistry) (*usecase.CatalogUseCase, *fakeCatalogRepo) {
	repo := newFakeCatalogRepo()
	coord := usecase.NewSyncCoordinator(reg, zerolog.Nop())
	return usecase.NewCatalogUseCase(repo, coord), repo
}

func TestCatalogCreate_ExitoYDuplicado(t *testing.T) {
	reg := &fakeRegistry{}
	uc, _ := newCatalogUC(reg)

	out, err := uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Textiles Rezvi"})
	require.NoError(t, err)
	assert.Equal(t, "Textiles Rezvi", out.Name)
	assert.True(t, out.IsActive)
	assert.Equal(t, "fabric-supplier", out.Category)

	// Mismo nombre activo en la misma categoría -> conflicto, sin segunda sincronización.
	_, err = uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Textiles Rezvi"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, []string{"upsert:Textiles Rezvi:FABRIC"}, reg.ops)
}

// El mismo nombre en otra categoría no es conflicto.
func TestCatalogCreate_MismoNombreOtraCategoria(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})

	_, err := uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Nacional"})
	require.NoError(t, err)
	_, err = uc.Create(testActor, catalog.ProductionSupplier, dto.CatalogEntryRequest{Name: "Nacional"})
	assert.NoError(t, err)
}

func TestCatalogCreate_NombreVacio(t *testing.T) {
	reg := &fakeRegistry{}
	uc, _ := newCatalogUC(reg)

	_, err := uc.Create(testActor, catalog.Fabric, dto.CatalogEntryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reg.ops)
}

// El fallo del registro no afecta el resultado de la operación de catálogo:
// el cliente recibe su entrada creada aunque la sincronización haya fallado.
func TestCatalogCreate_SincronizacionFallidaNoAfectaRespuesta(t *testing.T) {
	reg := &fakeRegistry{err: errStorage}
	uc, repo := newCatalogUC(reg)

	out, err := uc.Create(testActor, catalog.StoneWash, dto.CatalogEntryRequest{Name: "Lavandería Sur"})
	require.NoError(t, err)
	require.NotNil(t, out)

	persisted, _ := repo.FindActiveByName(catalog.StoneWash, "Lavandería Sur")
	assert.NotNil(t, persisted, "la entrada de catálogo quedó confirmada")
}

func TestCatalogRename_NoEncontrado(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})

	_, err := uc.Rename(testActor, catalog.Fabric, "no-existe", dto.CatalogEntryRequest{Name: "Denim"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogRename_ConflictoConOtraEntradaActiva(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})

	a, err := uc.Create(testActor, catalog.Fabric, dto.CatalogEntryRequest{Name: "Denim"})
	require.NoError(t, err)
	_, err = uc.Create(testActor, catalog.Fabric, dto.CatalogEntryRequest{Name: "Drill"})
	require.NoError(t, err)

	_, err = uc.Rename(testActor, catalog.Fabric, a.ID, dto.CatalogEntryRequest{Name: "Drill"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Renombrar dispara la secuencia upsert-nuevo / deactivate-viejo.
func TestCatalogRename_DisparaSincronizacion(t *testing.T) {
	reg := &fakeRegistry{}
	uc, _ := newCatalogUC(reg)

	created, err := uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Textiles Rezvi"})
	require.NoError(t, err)
	reg.ops = nil

	out, err := uc.Rename(testActor, catalog.FabricSupplier, created.ID, dto.CatalogEntryRequest{Name: "Textiles Rezvi Co."})
	require.NoError(t, err)
	assert.Equal(t, "Textiles Rezvi Co.", out.Name)
	assert.Equal(t, []string{
		"upsert:Textiles Rezvi Co.:FABRIC",
		"deactivate:Textiles Rezvi:FABRIC",
	}, reg.ops)
}

// Cambiar solo el valor (mismo nombre) no toca el registro.
func TestCatalogRename_SoloValorNoSincroniza(t *testing.T) {
	reg := &fakeRegistry{}
	uc, _ := newCatalogUC(reg)

	created, err := uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Textiles Rezvi", Value: "NIT 1"})
	require.NoError(t, err)
	reg.ops = nil

	out, err := uc.Rename(testActor, catalog.FabricSupplier, created.ID, dto.CatalogEntryRequest{Name: "Textiles Rezvi", Value: "NIT 2"})
	require.NoError(t, err)
	assert.Equal(t, "NIT 2", out.Value)
	assert.Empty(t, reg.ops)
}

func TestCatalogSoftDelete_DesactivaYEsIdempotente(t *testing.T) {
	reg := &fakeRegistry{}
	uc, repo := newCatalogUC(reg)

	created, err := uc.Create(testActor, catalog.PackingName, dto.CatalogEntryRequest{Name: "Caja máster"})
	require.NoError(t, err)
	reg.ops = nil

	require.NoError(t, uc.SoftDelete(testActor, catalog.PackingName, created.ID))
	entry, _ := repo.GetByID(catalog.PackingName, created.ID)
	require.NotNil(t, entry, "la fila sigue existiendo: borrado lógico, no físico")
	assert.False(t, entry.IsActive)
	assert.Equal(t, []string{"deactivate:Caja máster:PACKAGING"}, reg.ops)

	// Repetir el borrado sobre una entrada ya inactiva no es error y no
	// re-dispara sincronización.
	require.NoError(t, uc.SoftDelete(testActor, catalog.PackingName, created.ID))
	assert.Len(t, reg.ops, 1)
}

func TestCatalogSoftDelete_NoEncontrado(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})
	assert.ErrorIs(t, uc.SoftDelete(testActor, catalog.Style, "no-existe"), domain.ErrNotFound)
}

// Una entrada desactivada libera el nombre: se puede crear otra igual.
func TestCatalogCreate_NombreLiberadoTrasSoftDelete(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})

	created, err := uc.Create(testActor, catalog.Style, dto.CatalogEntryRequest{Name: "Jogger"})
	require.NoError(t, err)
	require.NoError(t, uc.SoftDelete(testActor, catalog.Style, created.ID))

	_, err = uc.Create(testActor, catalog.Style, dto.CatalogEntryRequest{Name: "Jogger"})
	assert.NoError(t, err)
}

func TestCatalogList_SoloActivasPorDefecto(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})

	b, err := uc.Create(testActor, catalog.Fabric, dto.CatalogEntryRequest{Name: "Drill"})
	require.NoError(t, err)
	_, err = uc.Create(testActor, catalog.Fabric, dto.CatalogEntryRequest{Name: "Denim"})
	require.NoError(t, err)
	require.NoError(t, uc.SoftDelete(testActor, catalog.Fabric, b.ID))

	out, err := uc.List(catalog.Fabric, false)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Denim", out.Items[0].Name)

	all, err := uc.List(catalog.Fabric, true)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	// Ordenado por nombre
	assert.Equal(t, "Denim", all.Items[0].Name)
	assert.Equal(t, "Drill", all.Items[1].Name)
}

func TestCatalogReconcile_CategoriaNoMapeada(t *testing.T) {
	uc, _ := newCatalogUC(&fakeRegistry{})
	_, err := uc.Reconcile(catalog.Style)
	assert.ErrorIs(t, err, domain.ErrNotSyncable)
}

// Reconcile sobre una categoría mapeada recorre activas e inactivas.
func TestCatalogReconcile_ResumenDeOperaciones(t *testing.T) {
	reg := &fakeRegistry{}
	uc, _ := newCatalogUC(reg)

	created, err := uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Textiles Rezvi"})
	require.NoError(t, err)
	_, err = uc.Create(testActor, catalog.FabricSupplier, dto.CatalogEntryRequest{Name: "Hilos del Valle"})
	require.NoError(t, err)
	require.NoError(t, uc.SoftDelete(testActor, catalog.FabricSupplier, created.ID))
	reg.ops = nil

	out, err := uc.Reconcile(catalog.FabricSupplier)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Upserted)
	assert.Equal(t, 1, out.Deactivated)
	assert.Equal(t, 0, out.Failed)
	assert.Equal(t, "fabric-supplier", out.Category)
}
