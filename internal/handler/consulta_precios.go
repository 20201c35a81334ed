package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ticketera/internal/repository"
	"ticketera/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const precioCacheTTL = 4 * time.Hour

// precioResponse is the payload cached in Redis for price-check displays.
type precioResponse struct {
	ID             uint    `json:"id"`
	Nombre         *string `json:"nombre"`
	PrecioUnitario string  `json:"precioUnitario"`
}

// ConsultaPreciosHandler serves read-only price lookups for price-check
// displays. Redis cache in front of the producto repo; the producto service
// invalidates entries on update/delete.
type ConsultaPreciosHandler struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewConsultaPreciosHandler(repo repository.ProductoRepository, rdb *redis.Client) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{repo: repo, rdb: rdb}
}

// GetPrecio godoc
// @Summary      Consulta de precio de un producto
// @Tags         precios
// @Produce      json
// @Param        id path int true "ID del producto"
// @Success      200 {object} handler.precioResponse
// @Failure      404
// @Router       /api/precios/{id} [get]
func (h *ConsultaPreciosHandler) GetPrecio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := service.PrecioCacheKey(id)

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp precioResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	producto, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	resp := precioResponse{
		ID:             producto.ID,
		Nombre:         producto.Nombre,
		PrecioUnitario: producto.PrecioUnitario.StringFixed(2),
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, precioCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
