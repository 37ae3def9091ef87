// Package memory implementa el puerto ProductRepository sobre un mapa en
// memoria protegido por mutex. Se usa en tests y para correr el servicio sin
// base de datos; reproduce el contrato del adaptador de PostgreSQL, incluido
// el ajuste atómico de cantidades y el único sobre name.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eustachekamala/virunga-inventory/internal/domain"
	"github.com/eustachekamala/virunga-inventory/internal/domain/entity"
	"github.com/eustachekamala/virunga-inventory/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo store de productos en memoria.
type ProductRepo struct {
	mu       sync.Mutex
	seq      int
	products map[int]*entity.Product
}

// NewProductRepository construye el store vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[int]*entity.Product)}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}

	r.seq++
	p.ID = r.seq
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = clone(p)
	return nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.products {
		if id != p.ID && existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	p.UpdatedAt = time.Now()
	r.products[p.ID] = clone(p)
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepo) Exists(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.products[id]
	return ok, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return clone(p), nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *ProductRepo) ListByName(_ context.Context, name string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(name)
	return r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

func (r *ProductRepo) ListByType(_ context.Context, t entity.TypeProduct) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(p *entity.Product) bool { return p.TypeProduct == t }), nil
}

func (r *ProductRepo) ListByCategory(_ context.Context, c entity.Category) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(p *entity.Product) bool { return p.Category == c }), nil
}

// AdjustQuantity sección crítica completa: leer, verificar la guarda y
// escribir bajo el mismo lock, igual que el UPDATE con guarda en PostgreSQL.
func (r *ProductRepo) AdjustQuantity(_ context.Context, id, delta int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	p.Quantity += delta
	p.UpdatedAt = time.Now()
	return clone(p), nil
}

func (r *ProductRepo) UpdateStatus(_ context.Context, id int, status entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products), nil
}

// filter devuelve copias ordenadas por id. Llamar con el lock tomado.
func (r *ProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.products {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func clone(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}
