package repository

import (
	"context"

	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
// Los adaptadores devuelven (nil, nil) cuando el producto no existe en las
// lecturas por id, y mapean la violación del único de name a domain.ErrDuplicate.
type ProductRepository interface {
	// Create inserta el producto y asigna ID, CreatedAt y UpdatedAt.
	Create(ctx context.Context, p *entity.Product) error
	// Update reemplaza el registro completo del producto.
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// ListByName busca por subcadena del nombre, sin distinguir mayúsculas.
	ListByName(ctx context.Context, name string) ([]*entity.Product, error)
	ListByType(ctx context.Context, t entity.TypeProduct) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, c entity.Category) ([]*entity.Product, error)
	// AdjustQuantity aplica quantity += delta de forma atómica en el store y
	// devuelve el producto resultante. Si el ajuste dejaría la cantidad por
	// debajo de cero devuelve domain.ErrInsufficientStock sin mutar nada;
	// si el id no existe, domain.ErrNotFound.
	AdjustQuantity(ctx context.Context, id, delta int) (*entity.Product, error)
	// UpdateStatus persiste solo el estado derivado (usado tras ajustes y por la reconciliación).
	UpdateStatus(ctx context.Context, id int, status entity.Status) error
	Count(ctx context.Context) (int, error)
}
