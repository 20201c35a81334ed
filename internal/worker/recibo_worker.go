package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibos: renders the PDF receipt for a
// liquidated ticket and hands delivery off to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"ticketera/internal/infra"
	"ticketera/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibos.
type ReciboJobPayload struct {
	TicketID     uint    `json:"ticket_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

// ReciboWorker loads the liquidated ticket, generates the PDF receipt and
// enqueues the email job that delivers it.
type ReciboWorker struct {
	ticketRepo     repository.TicketRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
	nombreNegocio  string
}

func NewReciboWorker(ticketRepo repository.TicketRepository, dispatcher *Dispatcher, pdfStoragePath, nombreNegocio string) *ReciboWorker {
	return &ReciboWorker{
		ticketRepo:     ticketRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		nombreNegocio:  nombreNegocio,
	}
}

// Process handles a single recibo job:
//  1. Fetch the ticket (with detalles + pagos) from DB
//  2. Render the PDF receipt
//  3. Enqueue the email job when the payer left an address
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}

	ticket, err := w.ticketRepo.FindByID(ctx, payload.TicketID)
	if err != nil {
		log.Error().Err(err).Uint("ticket_id", payload.TicketID).Msg("recibo_worker: ticket not found")
		return
	}

	pdfPath, err := infra.GenerarReciboPDF(ticket, w.nombreNegocio, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Uint("ticket_id", ticket.ID).Msg("recibo_worker: pdf generation failed")
		return
	}
	log.Info().Uint("ticket_id", ticket.ID).Str("pdf", pdfPath).Msg("recibo_worker: receipt generated")

	if payload.ClienteEmail == nil || *payload.ClienteEmail == "" {
		return
	}
	emailJob := EmailJobPayload{
		ToEmail: *payload.ClienteEmail,
		Subject: fmt.Sprintf("Recibo de pago — ticket %d", ticket.ID),
		Body:    fmt.Sprintf("Su ticket %d ha quedado liquidado. Adjuntamos el recibo.", ticket.ID),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Error().Err(err).Uint("ticket_id", ticket.ID).Msg("recibo_worker: failed to enqueue email")
	}
}
