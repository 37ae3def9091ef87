package ports

import (
	"context"
	"time"
)

// Regiones de caché, una por forma de consulta. Cada región se invalida
// completa en cada mutación: las vistas de lista, categoría, tipo y stock bajo
// son agregadas y cualquier mutación puede cambiar su membresía.
const (
	CacheProductByID       = "PRODUCT_BY_ID"
	CacheProductList       = "PRODUCT_LIST"
	CacheProductByCategory = "PRODUCT_BY_CATEGORY"
	CacheProductByType     = "PRODUCT_BY_TYPE"
	CacheProductByName     = "PRODUCT_BY_NAME"
	CacheLowStock          = "LOW_STOCK"
)

// DefaultCacheTTL TTL aplicado a regiones sin política propia.
const DefaultCacheTTL = 10 * time.Minute

var regionTTLs = map[string]time.Duration{
	CacheProductByID:       15 * time.Minute,
	CacheProductList:       20 * time.Minute,
	CacheProductByCategory: 15 * time.Minute,
	CacheProductByType:     15 * time.Minute,
	CacheProductByName:     10 * time.Minute,
	CacheLowStock:          5 * time.Minute,
}

// CacheRegions devuelve todas las regiones conocidas.
func CacheRegions() []string {
	return []string{
		CacheProductByID,
		CacheProductList,
		CacheProductByCategory,
		CacheProductByType,
		CacheProductByName,
		CacheLowStock,
	}
}

// CacheTTL devuelve el TTL configurado para una región.
func CacheTTL(region string) time.Duration {
	if ttl, ok := regionTTLs[region]; ok {
		return ttl
	}
	return DefaultCacheTTL
}

// ProductCache puerto de salida hacia el backend de caché.
//
// Las fallas del backend nunca se propagan: un Get fallido es un miss, un Set
// o EvictAll fallido se registra en el adaptador y se absorbe. Una caída de
// caché degrada rendimiento, nunca la corrección del camino de lectura/escritura.
// Los valores ausentes no se cachean; una lista vacía serializada sí es un
// valor válido y cacheable.
type ProductCache interface {
	// Get devuelve el valor serializado y true en hit; (nil, false) en miss o falla.
	Get(ctx context.Context, region, key string) ([]byte, bool)
	// Set guarda el valor con el TTL de la región.
	Set(ctx context.Context, region, key string, value []byte)
	// EvictAll vacía por completo cada región indicada.
	EvictAll(ctx context.Context, regions ...string)
}
