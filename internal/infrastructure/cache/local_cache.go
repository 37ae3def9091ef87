package cache

import (
	"context"

	"github.com/viccon/sturdyc"

	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
)

const (
	localCapacity        = 10_000
	localShards          = 64
	localEvictionPercent = 10
)

var _ ports.ProductCache = (*LocalCache)(nil)

// LocalCache implementación en memoria del puerto ProductCache, usada cuando
// Redis no está disponible al arranque. Un cliente sturdyc por región para
// respetar el TTL propio de cada una. No es distribuida y se pierde al
// reiniciar el proceso.
type LocalCache struct {
	regions map[string]*sturdyc.Client[[]byte]
}

// NewLocalCache construye la caché local con una shard por región de consulta.
func NewLocalCache() *LocalCache {
	regions := make(map[string]*sturdyc.Client[[]byte], len(ports.CacheRegions()))
	for _, region := range ports.CacheRegions() {
		regions[region] = sturdyc.New[[]byte](
			localCapacity,
			localShards,
			ports.CacheTTL(region),
			localEvictionPercent,
		)
	}
	return &LocalCache{regions: regions}
}

func (c *LocalCache) Get(_ context.Context, region, key string) ([]byte, bool) {
	client, ok := c.regions[region]
	if !ok {
		return nil, false
	}
	return client.Get(key)
}

func (c *LocalCache) Set(_ context.Context, region, key string, value []byte) {
	if client, ok := c.regions[region]; ok {
		client.Set(key, value)
	}
}

func (c *LocalCache) EvictAll(_ context.Context, regions ...string) {
	for _, region := range regions {
		client, ok := c.regions[region]
		if !ok {
			continue
		}
		for _, key := range client.ScanKeys() {
			client.Delete(key)
		}
	}
}
