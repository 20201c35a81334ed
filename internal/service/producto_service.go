package service

import (
	"context"
	"errors"
	"fmt"

	"ticketera/internal/dto"
	"ticketera/internal/model"
	"ticketera/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// PrecioCacheKey is the Redis key holding the cached price lookup for one
// product. The consulta handler populates it; this service invalidates it
// whenever the product mutates or disappears.
func PrecioCacheKey(id uint) string {
	return fmt.Sprintf("precio:%d", id)
}

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

func mapProducto(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		PrecioUnitario: p.PrecioUnitario,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:         req.Nombre,
		PrecioUnitario: req.PrecioUnitario,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return mapProducto(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return mapProducto(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		result = append(result, *mapProducto(&productos[i]))
	}
	return result, nil
}

// Actualizar mutates nombre and precioUnitario only; the identifier is
// immutable. Already-sold ticket lines keep their captured price.
func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = req.Nombre
	}
	if req.PrecioUnitario != nil {
		p.PrecioUnitario = *req.PrecioUnitario
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCachePrecio(ctx, id)
	return mapProducto(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidarCachePrecio(ctx, id)
	return nil
}

// invalidarCachePrecio drops the cached price entry. Best effort: a stale
// read until TTL expiry beats failing the mutation.
func (s *productoService) invalidarCachePrecio(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, PrecioCacheKey(id)).Err()
}
