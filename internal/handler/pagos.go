package handler

import (
	"errors"
	"net/http"

	"ticketera/internal/apierror"
	"ticketera/internal/dto"
	"ticketera/internal/service"

	"github.com/gin-gonic/gin"
)

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// ListarPorTicket godoc
// @Summary      Listar pagos de un ticket
// @Description  Retorna los pagos de un ticket ordenados por fecha descendente.
// @Tags         pagos
// @Produce      json
// @Param        ticketId path int true "ID del ticket"
// @Success      200 {array} dto.PagoResponse
// @Router       /api/pagos/ticket/{ticketId} [get]
func (h *PagosHandler) ListarPorTicket(c *gin.Context) {
	ticketID, ok := parseID(c, "ticketId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorTicket(c.Request.Context(), ticketID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pagos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar godoc
// @Summary      Registrar pago
// @Description  Registra un pago contra un ticket y liquida el ticket cuando lo pagado cubre el total.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarPagoRequest true "Pago a registrar"
// @Success      200 {object} dto.PagoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/pagos [post]
func (h *PagosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		// A missing ticket is a bad reference in the request body, not a
		// missing resource at this URL: 400, with a message.
		if errors.Is(err, service.ErrTicketNoEncontrado) {
			c.JSON(http.StatusBadRequest, apierror.New("Ticket no encontrado."))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar pago
// @Description  Elimina un pago. No renumera los pagos restantes ni re-evalúa el estatus del ticket.
// @Tags         pagos
// @Param        id path int true "ID del pago"
// @Success      200
// @Failure      404
// @Router       /api/pagos/{id} [delete]
func (h *PagosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPagoNoEncontrado) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusOK)
}
