package service

import "errors"

// Sentinel errors let handlers translate failures into the right status code
// without inspecting message text: not-found → 404, everything else → 400.
var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrTicketNoEncontrado   = errors.New("ticket no encontrado")
	ErrPagoNoEncontrado     = errors.New("pago no encontrado")
	ErrEstatusInvalido      = errors.New("estatus invalido")
)
