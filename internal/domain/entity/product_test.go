package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
)

// TestStatusFor cubre la tabla de verdad de la derivación: URGENT si y solo
// si la cantidad es menor o igual al umbral.
func TestStatusFor(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      entity.Status
	}{
		{"cantidad bajo el umbral", 3, 5, entity.StatusUrgent},
		{"cantidad igual al umbral", 5, 5, entity.StatusUrgent},
		{"cantidad sobre el umbral", 6, 5, entity.StatusNonUrgent},
		{"cantidad cero con umbral cero", 0, 0, entity.StatusUrgent},
		{"umbral cero con stock", 1, 0, entity.StatusNonUrgent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StatusFor(tc.quantity, tc.threshold))
		})
	}
}

// TestRefreshStatus verifica que reporta cambio solo cuando el estado flipea.
func TestRefreshStatus(t *testing.T) {
	p := &entity.Product{Quantity: 10, StockAlertThreshold: 5, Status: entity.StatusNonUrgent}

	assert.False(t, p.RefreshStatus(), "sin cambio de cantidad no debe reportar cambio")
	assert.Equal(t, entity.StatusNonUrgent, p.Status)

	p.Quantity = 4
	assert.True(t, p.RefreshStatus(), "cruzar el umbral debe reportar cambio")
	assert.Equal(t, entity.StatusUrgent, p.Status)

	// Idempotente: una segunda derivación con los mismos valores no cambia nada.
	assert.False(t, p.RefreshStatus())
	assert.Equal(t, entity.StatusUrgent, p.Status)
}

func TestIsLowStock(t *testing.T) {
	p := &entity.Product{Quantity: 5, StockAlertThreshold: 5}
	assert.True(t, p.IsLowStock())

	p.Quantity = 6
	assert.False(t, p.IsLowStock())
}
