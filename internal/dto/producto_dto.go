package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre         *string         `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"min=0"`
}

// ActualizarProductoRequest mutates nombre and precioUnitario only; the
// identifier is immutable.
type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// JSON field names follow the original API contract (camelCase) so existing
// POS front-ends keep working unchanged.
type ProductoResponse struct {
	ID             uint            `json:"id"`
	Nombre         *string         `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}
