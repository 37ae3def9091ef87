package usecase

import (
	"context"
	"fmt"

	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
	"github.com/eustachekamala/virunga-inventory/internal/domain/repository"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

// SeedUseCase carga un catálogo de ejemplo la primera vez que arranca el
// servicio con la base vacía. Si ya hay productos no hace nada.
type SeedUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(repo repository.ProductRepository, log *logger.Logger) *SeedUseCase {
	return &SeedUseCase{repo: repo, log: log}
}

type seedProduct struct {
	name        string
	description string
	category    entity.Category
	typeProduct entity.TypeProduct
	quantity    int
	threshold   int
}

var sampleProducts = []seedProduct{
	{"Screwdriver Set", "Professional screwdriver set with multiple heads for various applications", entity.CategoryMechanical, entity.TypeNonConsumable, 15, entity.DefaultStockAlertThreshold},
	{"Electrical Wire 2.5mm", "High-quality copper electrical wire, 2.5mm diameter, 100m roll", entity.CategoryElectrical, entity.TypeConsumable, 3, 10},
	{"Pipe Wrench 12 inch", "Heavy-duty pipe wrench for plumbing and maintenance work", entity.CategoryPlumbing, entity.TypeNonConsumable, 8, 3},
	{"PVC Pipe 1 inch", "Standard PVC pipes, 1 inch diameter, 3 meter length", entity.CategoryPlumbing, entity.TypeConsumable, 40, 12},
	{"Circuit Breaker 20A", "Single-pole 20A circuit breaker for distribution panels", entity.CategoryElectrical, entity.TypeNonConsumable, 12, entity.DefaultStockAlertThreshold},
	{"Ball Bearing 6204", "Sealed deep-groove ball bearing, 20x47x14mm", entity.CategoryMechanical, entity.TypeConsumable, 6, 8},
	{"Proximity Sensor M18", "Inductive proximity sensor, M18, NPN, 8mm sensing distance", entity.CategoryElectronics, entity.TypeNonConsumable, 9, 4},
	{"Safety Gloves", "Cut-resistant work gloves, size L", entity.CategoryIndustrialSupplies, entity.TypeConsumable, 25, 10},
	{"Machine Grease 1kg", "Multi-purpose lithium grease for bearings and joints", entity.CategoryIndustrialSupplies, entity.TypeConsumable, 2, entity.DefaultStockAlertThreshold},
	{"Gate Valve 2 inch", "Brass gate valve for water lines, 2 inch threaded", entity.CategoryPlumbing, entity.TypeNonConsumable, 7, 3},
}

// Run inserta el catálogo de ejemplo si el store está vacío.
func (uc *SeedUseCase) Run(ctx context.Context) error {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("contar productos: %w", err)
	}
	if count > 0 {
		uc.log.Info().Int("count", count).Msg("la base ya tiene productos; seed omitido")
		return nil
	}

	for _, s := range sampleProducts {
		p := &entity.Product{
			Name:                s.name,
			Description:         s.description,
			Category:            s.category,
			TypeProduct:         s.typeProduct,
			Quantity:            s.quantity,
			StockAlertThreshold: s.threshold,
		}
		p.RefreshStatus()
		if err := uc.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("insertar producto de ejemplo %q: %w", s.name, err)
		}
	}

	uc.log.Info().Int("count", len(sampleProducts)).Msg("catálogo de ejemplo cargado")
	return nil
}
