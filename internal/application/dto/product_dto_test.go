package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eustachekamala/virunga-inventory/internal/application/dto"
	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
)

// TestProductResponse_RoundTripJSON: la proyección es lo que se guarda en la
// caché, así que debe sobrevivir serialización completa, enums y fechas incluidos.
func TestProductResponse_RoundTripJSON(t *testing.T) {
	created := time.Date(2025, 11, 3, 8, 30, 0, 0, time.UTC)
	in := dto.ProductResponse{
		ID:                  7,
		Name:                "Breaker Bifasico 40A",
		Quantity:            4,
		Status:              entity.StatusUrgent,
		TypeProduct:         entity.TypeNonConsumable,
		Category:            entity.CategoryElectrical,
		StockAlertThreshold: 5,
		Description:         "Breaker industrial riel DIN",
		CreatedAt:           created,
		UpdatedAt:           created.Add(48 * time.Hour),
		ImageFile:           "3f1a.img",
		IsLowStock:          true,
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

// Una lista vacía serializada no debe confundirse con un valor ausente.
func TestListaVacia_SerializaDistintoDeNada(t *testing.T) {
	raw, err := json.Marshal([]dto.ProductResponse{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	var out []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
