package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eustachekamala/virunga-inventory/internal/application/dto"
	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
	"github.com/eustachekamala/virunga-inventory/internal/domain"
	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
	"github.com/eustachekamala/virunga-inventory/internal/domain/repository"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

// ProductUseCase orquesta el inventario: CRUD de productos, lecturas
// cache-through por región, ajustes de stock y alertas de stock bajo.
//
// Toda mutación termina invalidando las seis regiones de caché antes de
// retornar; una lectura posterior dentro del proceso siempre ve datos frescos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	cache    ports.ProductCache
	storage  ports.FileStorage
	notifier ports.Notifier
	alertTo  string
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	cache ports.ProductCache,
	storage ports.FileStorage,
	notifier ports.Notifier,
	alertTo string,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		cache:    cache,
		storage:  storage,
		notifier: notifier,
		alertTo:  alertTo,
		log:      log,
	}
}

// Create crea un producto. Cantidad por defecto 0, umbral por defecto 5;
// el estado se deriva antes de insertar. Nombre duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, domain.ErrInvalidInput
	}

	product := &entity.Product{
		Name:                strings.TrimSpace(in.Name),
		Description:         in.Description,
		Category:            in.Category,
		TypeProduct:         in.TypeProduct,
		Quantity:            0,
		StockAlertThreshold: entity.DefaultStockAlertThreshold,
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return 0, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.StockAlertThreshold != nil {
		if *in.StockAlertThreshold < 0 {
			return 0, domain.ErrInvalidInput
		}
		product.StockAlertThreshold = *in.StockAlertThreshold
	}
	product.RefreshStatus()

	if len(in.Image) > 0 {
		ref, err := uc.storage.Save(in.Image)
		if err != nil {
			return 0, fmt.Errorf("guardar imagen: %w", err)
		}
		product.ImageFile = ref
	}

	if err := uc.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("crear producto: %w", err)
	}

	uc.cache.EvictAll(ctx, ports.CacheRegions()...)
	uc.log.Info().Int("id", product.ID).Str("name", product.Name).Msg("producto creado")
	return product.ID, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian.
// Re-deriva el estado con la cantidad y el umbral resultantes antes de persistir.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.UpdateProductRequest) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cargar producto %d: %w", id, err)
	}
	if product == nil {
		return domain.ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.TypeProduct != nil {
		product.TypeProduct = *in.TypeProduct
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.StockAlertThreshold != nil {
		if *in.StockAlertThreshold < 0 {
			return domain.ErrInvalidInput
		}
		product.StockAlertThreshold = *in.StockAlertThreshold
	}
	if len(in.Image) > 0 {
		ref, err := uc.storage.Save(in.Image)
		if err != nil {
			return fmt.Errorf("guardar imagen: %w", err)
		}
		product.ImageFile = ref
	}

	product.RefreshStatus()

	if err := uc.repo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar producto %d: %w", id, err)
	}

	uc.cache.EvictAll(ctx, ports.CacheRegions()...)
	uc.log.Info().Int("id", product.ID).Msg("producto actualizado")
	uc.alertIfLowStock(product)
	return nil
}

// Delete elimina un producto por id.
func (uc *ProductUseCase) Delete(ctx context.Context, id int) error {
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar producto %d: %w", id, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	uc.cache.EvictAll(ctx, ports.CacheRegions()...)
	uc.log.Info().Int("id", id).Msg("producto eliminado")
	return nil
}

// GetByID lectura cache-through sobre PRODUCT_BY_ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	key := strconv.Itoa(id)
	if cached, ok := cacheGet[dto.ProductResponse](ctx, uc.cache, ports.CacheProductByID, key); ok {
		return &cached, nil
	}

	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar producto %d: %w", id, err)
	}
	if product == nil {
		// Un lookup fallido no se cachea: mañana el id puede existir.
		return nil, domain.ErrNotFound
	}

	resp := toProductResponse(product)
	uc.cachePut(ctx, ports.CacheProductByID, key, resp)
	return &resp, nil
}

// List lectura cache-through sobre PRODUCT_LIST. Una lista vacía es un
// valor cacheado válido, no un miss.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.listThrough(ctx, ports.CacheProductList, "all", func() ([]*entity.Product, error) {
		return uc.repo.List(ctx)
	})
}

// ListByName busca por subcadena del nombre sin distinguir mayúsculas,
// cache-through sobre PRODUCT_BY_NAME con la subcadena en minúsculas como clave.
func (uc *ProductUseCase) ListByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	key := strings.ToLower(name)
	return uc.listThrough(ctx, ports.CacheProductByName, key, func() ([]*entity.Product, error) {
		return uc.repo.ListByName(ctx, name)
	})
}

// ListByType lectura cache-through sobre PRODUCT_BY_TYPE.
func (uc *ProductUseCase) ListByType(ctx context.Context, t entity.TypeProduct) ([]dto.ProductResponse, error) {
	return uc.listThrough(ctx, ports.CacheProductByType, string(t), func() ([]*entity.Product, error) {
		return uc.repo.ListByType(ctx, t)
	})
}

// ListByCategory lectura cache-through sobre PRODUCT_BY_CATEGORY.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, c entity.Category) ([]dto.ProductResponse, error) {
	return uc.listThrough(ctx, ports.CacheProductByCategory, string(c), func() ([]*entity.Product, error) {
		return uc.repo.ListByCategory(ctx, c)
	})
}

// ListLowStock productos en o por debajo de su umbral, cache-through sobre LOW_STOCK.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	if cached, ok := cacheGet[[]dto.ProductResponse](ctx, uc.cache, ports.CacheLowStock, "all"); ok {
		return cached, nil
	}

	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	low := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, toProductResponse(p))
		}
	}
	if len(low) > 0 {
		uc.log.Warn().Int("count", len(low)).Msg("productos con stock bajo")
	}

	uc.cachePut(ctx, ports.CacheLowStock, "all", low)
	return low, nil
}

// StockIn suma delta unidades al producto. delta debe ser positivo.
// El incremento es atómico en el store; el estado se re-deriva después.
func (uc *ProductUseCase) StockIn(ctx context.Context, id, delta int) error {
	if delta <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.adjustStock(ctx, id, delta)
}

// StockOut descuenta delta unidades. delta debe ser positivo y no puede
// exceder la cantidad actual: en ese caso responde ErrInsufficientStock sin
// tocar el store (rechazo de negocio, no un error interno).
func (uc *ProductUseCase) StockOut(ctx context.Context, id, delta int) error {
	if delta <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.adjustStock(ctx, id, -delta)
}

func (uc *ProductUseCase) adjustStock(ctx context.Context, id, delta int) error {
	product, err := uc.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("ajustar stock del producto %d: %w", id, err)
	}

	if next := entity.StatusFor(product.Quantity, product.StockAlertThreshold); next != product.Status {
		product.Status = next
		if err := uc.repo.UpdateStatus(ctx, id, next); err != nil {
			return fmt.Errorf("persistir estado del producto %d: %w", id, err)
		}
	}

	uc.cache.EvictAll(ctx, ports.CacheRegions()...)
	uc.log.Info().Int("id", id).Int("delta", delta).Int("quantity", product.Quantity).Msg("stock ajustado")
	uc.alertIfLowStock(product)
	return nil
}

// alertIfLowStock registra y notifica cuando el producto quedó en o bajo el umbral.
func (uc *ProductUseCase) alertIfLowStock(p *entity.Product) {
	if !p.IsLowStock() {
		return
	}
	uc.log.Warn().
		Str("name", p.Name).
		Int("quantity", p.Quantity).
		Int("threshold", p.StockAlertThreshold).
		Msg("producto con stock bajo")

	if uc.alertTo == "" {
		return
	}
	subject := "Low Stock Alert: " + p.Name
	body := fmt.Sprintf(
		"Product: %s\nCurrent Quantity: %d\nThreshold: %d\n\nPlease restock immediately.",
		p.Name, p.Quantity, p.StockAlertThreshold,
	)
	uc.notifier.Send(uc.alertTo, subject, body)
}

// listThrough camino común de las lecturas de lista: caché primero, store en
// miss, poblar y devolver. Una falla al poblar degrada a lectura directa.
func (uc *ProductUseCase) listThrough(
	ctx context.Context,
	region, key string,
	load func() ([]*entity.Product, error),
) ([]dto.ProductResponse, error) {
	if cached, ok := cacheGet[[]dto.ProductResponse](ctx, uc.cache, region, key); ok {
		return cached, nil
	}

	products, err := load()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	uc.cachePut(ctx, region, key, out)
	return out, nil
}

func (uc *ProductUseCase) cachePut(ctx context.Context, region, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		uc.log.Warn().Err(err).Str("region", region).Msg("serializar valor de caché")
		return
	}
	uc.cache.Set(ctx, region, key, raw)
}

// cacheGet deserializa un hit de caché. Una entrada corrupta cuenta como miss.
func cacheGet[T any](ctx context.Context, cache ports.ProductCache, region, key string) (T, bool) {
	var out T
	raw, ok := cache.Get(ctx, region, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Quantity:            p.Quantity,
		Status:              p.Status,
		TypeProduct:         p.TypeProduct,
		Category:            p.Category,
		StockAlertThreshold: p.StockAlertThreshold,
		Description:         p.Description,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		ImageFile:           p.ImageFile,
		IsLowStock:          p.IsLowStock(),
	}
}
