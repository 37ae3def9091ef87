package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eustachekamala/virunga-inventory/internal/application/usecase"
	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
	"github.com/eustachekamala/virunga-inventory/internal/infrastructure/memory"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

func TestSeed_CargaCatalogoSoloConBaseVacia(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	uc := usecase.NewSeedUseCase(repo, logger.Nop())
	require.NoError(t, uc.Run(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Positive(t, count)

	// Todos los productos sembrados cumplen el invariante de estado.
	products, err := repo.List(ctx)
	require.NoError(t, err)
	for _, p := range products {
		assert.Equal(t, entity.StatusFor(p.Quantity, p.StockAlertThreshold), p.Status, p.Name)
	}

	// Una segunda corrida no duplica nada.
	require.NoError(t, uc.Run(ctx))
	again, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, again)
}
