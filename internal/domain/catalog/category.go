package catalog

// ContractorType tipo canónico de un contratista en el registro.
type ContractorType string

const (
	TypeFabric     ContractorType = "FABRIC"
	TypeProduction ContractorType = "PRODUCTION"
	TypePackaging  ContractorType = "PACKAGING"
	TypeStoneWash  ContractorType = "STONE_WASH"
)

// ParseContractorType convierte el valor recibido por la API al tipo canónico.
func ParseContractorType(s string) (ContractorType, bool) {
	switch ContractorType(s) {
	case TypeFabric, TypeProduction, TypePackaging, TypeStoneWash:
		return ContractorType(s), true
	}
	return "", false
}

// Category identifica uno de los ocho catálogos fijos de la aplicación.
// Es un conjunto cerrado: el despacho por categoría se resuelve en compilación,
// no con un mapa de strings.
type Category int

const (
	ProductionSupplier Category = iota
	FabricSupplier
	Fabric
	StoneWash
	PackingName
	Style
	OrderType
	OrderLevel
)

var slugs = [...]string{
	ProductionSupplier: "production-supplier",
	FabricSupplier:     "fabric-supplier",
	Fabric:             "fabric",
	StoneWash:          "stone-wash",
	PackingName:        "packing-name",
	Style:              "style",
	OrderType:          "order-type",
	OrderLevel:         "order-level",
}

// All devuelve las ocho categorías en orden estable.
func All() []Category {
	return []Category{
		ProductionSupplier, FabricSupplier, Fabric, StoneWash,
		PackingName, Style, OrderType, OrderLevel,
	}
}

// Parse resuelve el slug de la URL a su categoría. ok=false si no existe.
func Parse(slug string) (Category, bool) {
	for c, s := range slugs {
		if s == slug {
			return Category(c), true
		}
	}
	return 0, false
}

// Slug devuelve el identificador usado en rutas y en la columna category.
func (c Category) Slug() string {
	if int(c) < 0 || int(c) >= len(slugs) {
		return ""
	}
	return slugs[c]
}

func (c Category) String() string { return c.Slug() }

// ContractorType devuelve el tipo de contratista asociado a la categoría.
// Solo cuatro de las ocho categorías están mapeadas al registro; para el
// resto ok=false y ninguna mutación dispara sincronización.
func (c Category) ContractorType() (ContractorType, bool) {
	switch c {
	case ProductionSupplier:
		return TypeProduction, true
	case FabricSupplier:
		return TypeFabric, true
	case PackingName:
		return TypePackaging, true
	case StoneWash:
		return TypeStoneWash, true
	}
	return "", false
}
