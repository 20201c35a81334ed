package handler

import (
	"errors"
	"net/http"

	"ticketera/internal/apierror"
	"ticketera/internal/dto"
	"ticketera/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketsHandler struct{ svc service.TicketService }

func NewTicketsHandler(svc service.TicketService) *TicketsHandler {
	return &TicketsHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar tickets
// @Description  Retorna todos los tickets con sus detalles y productos cargados.
// @Tags         tickets
// @Produce      json
// @Success      200 {array} dto.TicketResponse
// @Router       /api/tickets [get]
func (h *TicketsHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tickets"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener ticket
// @Description  Retorna un ticket con detalles, productos y pagos, más los totales calculados.
// @Tags         tickets
// @Produce      json
// @Param        id path int true "ID del ticket"
// @Success      200 {object} dto.TicketResponse
// @Failure      404
// @Router       /api/tickets/{id} [get]
func (h *TicketsHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear ticket
// @Description  Crea un ticket con sus detalles. Estatus y fecha de creación los fija el servidor.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearTicketRequest true "Ticket a crear"
// @Success      200 {object} dto.TicketResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/tickets [post]
func (h *TicketsHandler) Crear(c *gin.Context) {
	var req dto.CrearTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar ticket
// @Description  Actualiza folio y estatus. Detalles y pagos no se tocan por esta vía.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id   path int true "ID del ticket"
// @Param        body body dto.ActualizarTicketRequest true "Campos a actualizar"
// @Success      200 {object} dto.TicketResponse
// @Failure      404
// @Router       /api/tickets/{id} [put]
func (h *TicketsHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrTicketNoEncontrado) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar ticket
// @Tags         tickets
// @Param        id path int true "ID del ticket"
// @Success      200
// @Failure      404
// @Router       /api/tickets/{id} [delete]
func (h *TicketsHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketNoEncontrado) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusOK)
}
