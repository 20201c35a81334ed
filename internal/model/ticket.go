package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estatus values for Ticket. The transition is one-directional: a Ticket
// becomes "Pagado" when payments cover its total and nothing reverts it.
const (
	EstatusPorPagar = "Por pagar"
	EstatusPagado   = "Pagado"
)

// Ticket is a sales transaction. It owns its Detalles and Pagos; deleting
// the ticket cascades to both at the DB level.
type Ticket struct {
	ID               uint       `gorm:"primaryKey"`
	Folio            *string    `gorm:"index"`
	FechaCreacion    time.Time  `gorm:"not null"`
	FechaLiquidacion *time.Time
	Estatus          string `gorm:"type:varchar(20);not null;default:'Por pagar'"`

	Detalles []TicketDetalle `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Pagos    []Pago          `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// Total sums the row totals of every detalle. Computed on read, never stored.
func (t *Ticket) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Detalles {
		total = total.Add(d.TotalFila())
	}
	return total
}

// TotalPagado sums the amounts of every pago currently on the ticket.
func (t *Ticket) TotalPagado() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.Pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// Pendiente is Total minus TotalPagado. Negative when overpaid; no clamping.
func (t *Ticket) Pendiente() decimal.Decimal {
	return t.Total().Sub(t.TotalPagado())
}

// TicketDetalle is one product line on a ticket. PrecioUnitario is captured
// at sale time and is independent of the product's current price.
type TicketDetalle struct {
	ID             uint            `gorm:"primaryKey"`
	TicketID       uint            `gorm:"index;not null"`
	ProductoID     uint            `gorm:"index;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	// No FK constraint on ProductoID: deleting a producto must not touch
	// (nor be blocked by) lines already sold at their captured price.
	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:-"`
}

// TotalFila is Cantidad × PrecioUnitario.
func (d *TicketDetalle) TotalFila() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
