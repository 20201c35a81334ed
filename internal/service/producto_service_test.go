package service_test

import (
	"context"
	"testing"

	"ticketera/internal/dto"
	"ticketera/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductoSvc() (service.ProductoService, *stubProductoRepo) {
	repo := newStubProductoRepo()
	return service.NewProductoService(repo, nil), repo
}

func TestCrearProducto(t *testing.T) {
	svc, _ := buildProductoSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:         strPtr("Café americano"),
		PrecioUnitario: decimal.NewFromFloat(35.50),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Café americano", *resp.Nombre)
	assert.Equal(t, "35.5", resp.PrecioUnitario.String())
}

func TestObtenerProducto_NoEncontrado(t *testing.T) {
	svc, _ := buildProductoSvc()
	_, err := svc.ObtenerPorID(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}

func TestActualizarProducto_ParcialConPunteros(t *testing.T) {
	svc, repo := buildProductoSvc()
	p := seedProducto(repo, "Pan", 5.00)

	// Only the price changes; the name stays.
	nuevo := decimal.NewFromFloat(6.50)
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		PrecioUnitario: &nuevo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pan", *resp.Nombre)
	assert.Equal(t, "6.5", resp.PrecioUnitario.String())

	resp, err = svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Nombre: strPtr("Pan integral"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pan integral", *resp.Nombre)
	assert.Equal(t, "6.5", resp.PrecioUnitario.String())
}

func TestActualizarProducto_NoEncontrado(t *testing.T) {
	svc, _ := buildProductoSvc()
	_, err := svc.Actualizar(context.Background(), 99, dto.ActualizarProductoRequest{Nombre: strPtr("X")})
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}

func TestEliminarProducto(t *testing.T) {
	svc, repo := buildProductoSvc()
	p := seedProducto(repo, "Temporal", 1.00)

	require.NoError(t, svc.Eliminar(context.Background(), p.ID))
	assert.Empty(t, repo.productos)

	err := svc.Eliminar(context.Background(), p.ID)
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}

func TestListarProductos(t *testing.T) {
	svc, repo := buildProductoSvc()
	seedProducto(repo, "A", 1)
	seedProducto(repo, "B", 2)
	seedProducto(repo, "C", 3)

	productos, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 3)
	assert.Equal(t, "A", *productos[0].Nombre)
	assert.Equal(t, "3", productos[2].PrecioUnitario.String())
}
