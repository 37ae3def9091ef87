// Package cache implementa el puerto ProductCache sobre Redis, con caída
// permanente a una caché local en memoria cuando Redis no responde al arranque.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
	"github.com/eustachekamala/virunga-inventory/pkg/config"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

const pingTimeout = 3 * time.Second

// New intenta conectar con Redis. Si el ping de arranque falla, devuelve la
// caché local para toda la vida del proceso; no hay reintento posterior.
func New(cfg config.RedisConfig, log *logger.Logger) ports.ProductCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).
			Msg("redis no disponible; usando caché local en memoria")
		_ = client.Close()
		return NewLocalCache()
	}

	log.Info().Str("addr", cfg.Addr).Msg("conexión a Redis establecida")
	return NewRedisCache(client, log)
}
