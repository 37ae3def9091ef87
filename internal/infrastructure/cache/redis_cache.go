package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

var _ ports.ProductCache = (*RedisCache)(nil)

// RedisCache adaptador del puerto ProductCache sobre Redis. Las claves se
// namespacean como "<región>:<clave>" para poder vaciar una región con SCAN.
// Toda falla del backend se registra y se absorbe: nunca llega al que llama.
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCache construye el adaptador con un cliente ya verificado.
func NewRedisCache(client *redis.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{client: client, log: log}
}

func (c *RedisCache) Get(ctx context.Context, region, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, redisKey(region, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("region", region).Msg("falla leyendo de redis")
		}
		return nil, false
	}
	return raw, true
}

func (c *RedisCache) Set(ctx context.Context, region, key string, value []byte) {
	err := c.client.Set(ctx, redisKey(region, key), value, ports.CacheTTL(region)).Err()
	if err != nil {
		c.log.Warn().Err(err).Str("region", region).Msg("falla escribiendo en redis")
	}
}

func (c *RedisCache) EvictAll(ctx context.Context, regions ...string) {
	for _, region := range regions {
		iter := c.client.Scan(ctx, 0, region+":*", 100).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				c.log.Warn().Err(err).Str("key", iter.Val()).Msg("falla expulsando clave de redis")
			}
		}
		if err := iter.Err(); err != nil {
			c.log.Warn().Err(err).Str("region", region).Msg("falla recorriendo región en redis")
		}
	}
}

func redisKey(region, key string) string {
	return region + ":" + key
}
