package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DetalleTicketRequest captures one line at sale time. PrecioUnitario is the
// price charged for this sale, not the product's live price.
type DetalleTicketRequest struct {
	ProductoID     uint            `json:"productoId"     validate:"required"`
	Cantidad       int             `json:"cantidad"       validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"min=0"`
}

// CrearTicketRequest ignores any client-supplied estatus or dates: creation
// always forces "Por pagar" and a server-side fechaCreacion.
type CrearTicketRequest struct {
	Folio    *string                `json:"folio"`
	Detalles []DetalleTicketRequest `json:"detalles" validate:"dive"`
}

// ActualizarTicketRequest mutates folio and estatus only; detalles and pagos
// are never altered through this path.
type ActualizarTicketRequest struct {
	Folio   *string `json:"folio"`
	Estatus *string `json:"estatus"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleTicketResponse struct {
	ID             uint              `json:"id"`
	ProductoID     uint              `json:"productoId"`
	Producto       *ProductoResponse `json:"producto,omitempty"`
	Cantidad       int               `json:"cantidad"`
	PrecioUnitario decimal.Decimal   `json:"precioUnitario"`
	TotalFila      decimal.Decimal   `json:"totalFila"`
}

// TicketResponse carries the computed settlement fields alongside the stored
// ones. Totals are recomputed from the loaded detalles/pagos on every read.
type TicketResponse struct {
	ID               uint                    `json:"id"`
	Folio            *string                 `json:"folio"`
	FechaCreacion    string                  `json:"fechaCreacion"`
	FechaLiquidacion *string                 `json:"fechaLiquidacion"`
	Estatus          string                  `json:"estatus"`
	Detalles         []DetalleTicketResponse `json:"detalles"`
	Pagos            []PagoResponse          `json:"pagos"`
	Total            decimal.Decimal         `json:"total"`
	TotalPagado      decimal.Decimal         `json:"totalPagado"`
	Pendiente        decimal.Decimal         `json:"pendiente"`
}
