package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarPagoRequest records one payment against a ticket. Fecha and
// numeroPago are always server-assigned; anything the client sends for them
// is ignored. Monto is a pointer so that "required" checks presence only:
// zero and negative amounts are valid pagos. ClienteEmail, when present,
// triggers the async receipt mail once the payment liquidates the ticket.
type RegistrarPagoRequest struct {
	TicketID     uint             `json:"ticketId" validate:"required"`
	Folio        *string          `json:"folio"`
	Monto        *decimal.Decimal `json:"monto" validate:"required"`
	ClienteEmail *string          `json:"clienteEmail" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PagoResponse struct {
	ID         uint            `json:"id"`
	Folio      *string         `json:"folio"`
	TicketID   uint            `json:"ticketId"`
	NumeroPago int             `json:"numeroPago"`
	Fecha      string          `json:"fecha"`
	Monto      decimal.Decimal `json:"monto"`
}
