package infra

// pdf.go — PDF receipt generation using go-pdf/fpdf.
// Generates A7-size thermal receipt-style documents with:
//   - Business name header
//   - Ticket number, folio and creation timestamp
//   - Line item table (product name, quantity, row total)
//   - Bold total
//   - Payment breakdown (numero, amount) and remaining balance
//
// The output file is saved to storagePath/recibo_{ticketID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"ticketera/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarReciboPDF renders the receipt for a ticket. The ticket must come
// with detalles (and their productos) and pagos loaded. storagePath is
// created if needed. Returns the path of the generated file.
func GenerarReciboPDF(ticket *model.Ticket, nombreNegocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%d.pdf", ticket.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, tr(nombreNegocio), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Pago", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Ticket info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Ticket N° %d", ticket.ID)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	if ticket.Folio != nil && *ticket.Folio != "" {
		pdf.CellFormat(contentW, 4, "Folio: "+*ticket.Folio, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4, ticket.FechaCreacion.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Item header ───────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // row total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Importe", "B", 1, "R", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for i := range ticket.Detalles {
		d := &ticket.Detalles[i]
		nombre := ""
		if d.Producto != nil && d.Producto.Nombre != nil {
			nombre = *d.Producto.Nombre
		}
		// Truncate long names
		if r := []rune(nombre); len(r) > 22 {
			nombre = string(r[:21]) + "…"
		}
		pdf.CellFormat(col1, 5, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+d.TotalFila().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+ticket.Total().StringFixed(2), "", 1, "R", false, 0, "")

	// ── Payments ──────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	for i := range ticket.Pagos {
		p := &ticket.Pagos[i]
		label := fmt.Sprintf("Pago %d (%s):", p.NumeroPago, p.Fecha.Format("02/01/2006"))
		pdf.CellFormat(col1+col2, 4, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "$"+p.Monto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1+col2, 5, "Pendiente:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "$"+ticket.Pendiente().StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, tr("¡Gracias por su pago!"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
