package entity

import "time"

// Status clasificación de urgencia derivada del nivel de stock.
// Nunca la fija el cliente: se recalcula tras cada mutación de cantidad o umbral.
type Status string

const (
	StatusUrgent    Status = "URGENT"
	StatusNonUrgent Status = "NON_URGENT"
)

// TypeProduct indica si el producto se consume con el uso.
type TypeProduct string

const (
	TypeConsumable    TypeProduct = "CONSUMABLE"
	TypeNonConsumable TypeProduct = "NON_CONSUMABLE"
)

// Category familia del producto dentro del almacén.
type Category string

const (
	CategoryElectrical         Category = "ELECTRICAL"          // cables, breakers, motores
	CategoryMechanical         Category = "MECHANICAL"          // rodamientos, correas, herramienta mecánica
	CategoryPlumbing           Category = "PLUMBING"            // tubería, válvulas, accesorios
	CategoryElectronics        Category = "ELECTRONICS"         // sensores, tarjetas, componentes
	CategoryIndustrialSupplies Category = "INDUSTRIAL_SUPPLIES" // lubricantes, EPP, consumibles
)

// DefaultStockAlertThreshold umbral de alerta asignado al crear un producto si no se indica otro.
const DefaultStockAlertThreshold = 5

// Product unidad de inventario del almacén. Identidad asignada por el store al insertar.
// Name es único entre productos vivos.
type Product struct {
	ID                  int
	Name                string
	Quantity            int
	StockAlertThreshold int
	Status              Status
	TypeProduct         TypeProduct
	Category            Category
	Description         string
	ImageFile           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// StatusFor deriva el estado de urgencia a partir de cantidad y umbral.
// Es la única fuente de verdad del invariante: URGENT si y solo si quantity <= threshold.
func StatusFor(quantity, threshold int) Status {
	if quantity <= threshold {
		return StatusUrgent
	}
	return StatusNonUrgent
}

// RefreshStatus recalcula el estado del producto y reporta si cambió.
func (p *Product) RefreshStatus() bool {
	next := StatusFor(p.Quantity, p.StockAlertThreshold)
	if p.Status == next {
		return false
	}
	p.Status = next
	return true
}

// IsLowStock indica si el producto está en o por debajo de su umbral de alerta.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.StockAlertThreshold
}
