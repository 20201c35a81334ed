package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a sellable item. Ticket lines reference it but capture their
// own unit price at sale time, so editing or deleting a Producto never
// alters already-sold lines.
type Producto struct {
	ID             uint            `gorm:"primaryKey"`
	Nombre         *string         `gorm:"index"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
