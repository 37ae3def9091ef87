package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
	"github.com/eustachekamala/virunga-inventory/internal/domain/repository"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

// ReconcileUseCase barrido periódico del inventario: re-deriva el estado de
// urgencia de cada producto, persiste solo los que cambiaron, invalida todas
// las regiones de caché una vez por pasada y envía un único correo consolidado
// si hay productos en o bajo su umbral.
//
// Corre en segundo plano, concurrente con el tráfico de requests; no comparte
// más estado con el camino de servicio que el store y la caché.
type ReconcileUseCase struct {
	repo     repository.ProductRepository
	cache    ports.ProductCache
	notifier ports.Notifier
	alertTo  string
	log      *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(
	repo repository.ProductRepository,
	cache ports.ProductCache,
	notifier ports.Notifier,
	alertTo string,
	log *logger.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		alertTo:  alertTo,
		log:      log,
	}
}

// Run ejecuta una pasada completa de reconciliación.
func (uc *ReconcileUseCase) Run(ctx context.Context) error {
	uc.log.Info().Msg("iniciando reconciliación de stock")

	products, err := uc.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listar productos: %w", err)
	}

	var changed int
	var low []*entity.Product
	for _, p := range products {
		if p.RefreshStatus() {
			if err := uc.repo.UpdateStatus(ctx, p.ID, p.Status); err != nil {
				uc.log.Error().Err(err).Int("id", p.ID).Msg("persistir estado reconciliado")
				continue
			}
			changed++
		}
		if p.IsLowStock() {
			low = append(low, p)
		}
	}

	// Una sola invalidación por pasada, no una por producto.
	uc.cache.EvictAll(ctx, ports.CacheRegions()...)

	if len(low) > 0 {
		uc.notifyLowStock(low)
	}

	uc.log.Info().
		Int("products", len(products)).
		Int("status_changed", changed).
		Int("low_stock", len(low)).
		Msg("reconciliación de stock completada")
	return nil
}

// notifyLowStock compone el correo consolidado con todos los productos bajos.
// Si el envío falla, el adaptador lo registra; la pasada nunca falla por esto.
func (uc *ReconcileUseCase) notifyLowStock(low []*entity.Product) {
	var msg strings.Builder
	msg.WriteString("Low Stock Alert!\n\nThe following products are below their stock threshold:\n\n")
	for _, p := range low {
		fmt.Fprintf(&msg, "• %s — Qty: %d (Threshold: %d)\n", p.Name, p.Quantity, p.StockAlertThreshold)
	}
	msg.WriteString("\nPlease restock these items as soon as possible.")

	if uc.alertTo == "" {
		uc.log.Warn().Int("count", len(low)).Msg("stock bajo detectado, sin destinatario de alertas configurado")
		return
	}

	uc.notifier.Send(uc.alertTo, "Stock Alert: Low Inventory Detected", msg.String())
	uc.log.Warn().Int("count", len(low)).Msg("alerta de stock bajo enviada")
}
