package dto

import (
	"time"

	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// Quantity y StockAlertThreshold son opcionales: 0 y el umbral por defecto si faltan.
type CreateProductRequest struct {
	Name                string             `json:"name" validate:"required,min=1,max=200"`
	Description         string             `json:"description"`
	Category            entity.Category    `json:"category"`
	TypeProduct         entity.TypeProduct `json:"type_product"`
	Quantity            *int               `json:"quantity" validate:"omitempty,gte=0"`
	StockAlertThreshold *int               `json:"stock_alert_threshold" validate:"omitempty,gte=0"`
	Image               []byte             `json:"-"`
}

// UpdateProductRequest entrada para actualizar un producto. Actualización
// parcial: un campo nil se deja como está (no hay forma de "limpiar" un campo;
// es el comportamiento especificado, no un hueco).
type UpdateProductRequest struct {
	Name                *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Description         *string             `json:"description"`
	Category            *entity.Category    `json:"category"`
	TypeProduct         *entity.TypeProduct `json:"type_product"`
	Quantity            *int                `json:"quantity" validate:"omitempty,gte=0"`
	StockAlertThreshold *int                `json:"stock_alert_threshold" validate:"omitempty,gte=0"`
	Image               []byte              `json:"-"`
}

// ProductResponse proyección de un producto devuelta a los consumidores.
// Es también la forma que se serializa en la caché, así que debe hacer
// round-trip completo por JSON (enums y fechas incluidos).
type ProductResponse struct {
	ID                  int                `json:"id"`
	Name                string             `json:"name"`
	Quantity            int                `json:"quantity"`
	Status              entity.Status      `json:"status"`
	TypeProduct         entity.TypeProduct `json:"type_product"`
	Category            entity.Category    `json:"category"`
	StockAlertThreshold int                `json:"stock_alert_threshold"`
	Description         string             `json:"description"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	ImageFile           string             `json:"image_file,omitempty"`
	IsLowStock          bool               `json:"is_low_stock"`
}
