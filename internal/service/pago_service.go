package service

import (
	"context"
	"errors"
	"time"

	"ticketera/internal/dto"
	"ticketera/internal/model"
	"ticketera/internal/repository"
	"ticketera/internal/worker"

	"gorm.io/gorm"
)

// PagoService is the settlement engine: it records payments against tickets
// and maintains the ticket's derived financial state (estatus and
// fechaLiquidacion) as payments arrive.
type PagoService interface {
	RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error)
	ListarPorTicket(ctx context.Context, ticketID uint) ([]dto.PagoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type pagoService struct {
	repo       repository.PagoRepository
	ticketRepo repository.TicketRepository
	dispatcher *worker.Dispatcher
}

func NewPagoService(repo repository.PagoRepository, ticketRepo repository.TicketRepository, dispatcher *worker.Dispatcher) PagoService {
	return &pagoService{repo: repo, ticketRepo: ticketRepo, dispatcher: dispatcher}
}

// RegistrarPago records one payment:
//  1. Load the ticket with detalles and pagos; missing ticket is a reference
//     error for the caller.
//  2. numeroPago = count of pagos already on the ticket + 1.
//  3. fecha = now, whatever the client sent.
//  4. Persist the pago.
//  5. totalPagado = existing pagos + the new monto.
//  6. totalTicket = sum of detalle row totals.
//  7. totalPagado >= totalTicket flips the ticket to "Pagado" and stamps
//     fechaLiquidacion. The transition never runs backwards; later pago
//     deletions do not re-evaluate it.
//
// The pre-flight read stays outside the transaction; both writes share one.
// Monto is not checked for sign: a negative pago is accepted and simply
// lowers totalPagado, matching the historical behavior of this endpoint.
func (s *pagoService) RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNoEncontrado
		}
		return nil, err
	}

	pago := &model.Pago{
		Folio:      req.Folio,
		TicketID:   ticket.ID,
		NumeroPago: len(ticket.Pagos) + 1,
		Fecha:      time.Now(),
		Monto:      *req.Monto,
	}

	liquidado := false
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, pago); err != nil {
			return err
		}

		totalPagado := ticket.TotalPagado().Add(pago.Monto)
		totalTicket := ticket.Total()

		if totalPagado.GreaterThanOrEqual(totalTicket) {
			if err := s.ticketRepo.MarcarPagadoTx(tx, ticket.ID, time.Now()); err != nil {
				return err
			}
			liquidado = true
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt pipeline — fire and forget, never blocks the payment.
	if liquidado && s.dispatcher != nil && req.ClienteEmail != nil && *req.ClienteEmail != "" {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{
			TicketID:     ticket.ID,
			ClienteEmail: req.ClienteEmail,
		})
	}

	return pagoToResponse(pago), nil
}

// ListarPorTicket returns the pagos of a ticket, newest first. An unknown
// ticket yields an empty list, same as the original endpoint.
func (s *pagoService) ListarPorTicket(ctx context.Context, ticketID uint) ([]dto.PagoResponse, error) {
	pagos, err := s.repo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PagoResponse, 0, len(pagos))
	for i := range pagos {
		result = append(result, *pagoToResponse(&pagos[i]))
	}
	return result, nil
}

// Eliminar removes a pago. Deliberately no renumbering of the remaining
// pagos and no re-evaluation of the ticket's estatus.
func (s *pagoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPagoNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
