package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago is one payment event against a ticket. NumeroPago is 1-based and
// assigned at insertion (count of prior pagos + 1); Fecha is server-set.
// Immutable after creation except for deletion — deleting a pago does not
// renumber the others nor re-evaluate the ticket's estatus.
type Pago struct {
	ID         uint            `gorm:"primaryKey"`
	Folio      *string         `gorm:"index"`
	TicketID   uint            `gorm:"index;not null"`
	NumeroPago int             `gorm:"not null"`
	Fecha      time.Time       `gorm:"not null"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
