package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confetex/ordenes-api/internal/domain/catalog"
)

// Las ocho categorías deben tener slug y el slug debe hacer round-trip por Parse.
func TestCategory_SlugRoundTrip(t *testing.T) {
	all := catalog.All()
	require.Len(t, all, 8, "deben existir exactamente ocho categorías")

	seen := map[string]bool{}
	for _, c := range all {
		slug := c.Slug()
		require.NotEmpty(t, slug)
		assert.False(t, seen[slug], "slug repetido: %s", slug)
		seen[slug] = true

		parsed, ok := catalog.Parse(slug)
		require.True(t, ok, "Parse debe resolver %s", slug)
		assert.Equal(t, c, parsed)
	}
}

func TestCategory_ParseDesconocido(t *testing.T) {
	_, ok := catalog.Parse("warehouse")
	assert.False(t, ok)
	_, ok = catalog.Parse("")
	assert.False(t, ok)
}

// Solo cuatro categorías están mapeadas a un tipo de contratista, con el
// mapeo fijo categoría -> tipo.
func TestCategory_MapeoContratista(t *testing.T) {
	expected := map[catalog.Category]catalog.ContractorType{
		catalog.ProductionSupplier: catalog.TypeProduction,
		catalog.FabricSupplier:     catalog.TypeFabric,
		catalog.PackingName:        catalog.TypePackaging,
		catalog.StoneWash:          catalog.TypeStoneWash,
	}
	for _, c := range catalog.All() {
		typ, ok := c.ContractorType()
		want, mapped := expected[c]
		assert.Equal(t, mapped, ok, "categoría %s", c.Slug())
		if mapped {
			assert.Equal(t, want, typ, "categoría %s", c.Slug())
		}
	}
}

func TestParseContractorType(t *testing.T) {
	typ, ok := catalog.ParseContractorType("FABRIC")
	require.True(t, ok)
	assert.Equal(t, catalog.TypeFabric, typ)

	_, ok = catalog.ParseContractorType("fabric")
	assert.False(t, ok, "el tipo es sensible a mayúsculas")

	_, ok = catalog.ParseContractorType("TRANSPORT")
	assert.False(t, ok)
}
