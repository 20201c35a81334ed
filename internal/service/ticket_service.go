package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketera/internal/dto"
	"ticketera/internal/model"
	"ticketera/internal/repository"

	"gorm.io/gorm"
)

// TicketService defines the business logic contract for tickets.
type TicketService interface {
	Crear(ctx context.Context, req dto.CrearTicketRequest) (*dto.TicketResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.TicketResponse, error)
	Listar(ctx context.Context) ([]dto.TicketResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarTicketRequest) (*dto.TicketResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type ticketService struct {
	repo         repository.TicketRepository
	productoRepo repository.ProductoRepository
}

func NewTicketService(repo repository.TicketRepository, productoRepo repository.ProductoRepository) TicketService {
	return &ticketService{repo: repo, productoRepo: productoRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Crear persists a new ticket with its detalles as one unit. Estatus and
// fechaCreacion are forced server-side; client-supplied values never win.
func (s *ticketService) Crear(ctx context.Context, req dto.CrearTicketRequest) (*dto.TicketResponse, error) {
	t := &model.Ticket{
		Folio:            req.Folio,
		FechaCreacion:    time.Now(),
		FechaLiquidacion: nil,
		Estatus:          model.EstatusPorPagar,
	}

	for _, d := range req.Detalles {
		producto, err := s.productoRepo.FindByID(ctx, d.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto %d no encontrado", d.ProductoID)
		}
		t.Detalles = append(t.Detalles, model.TicketDetalle{
			ProductoID:     producto.ID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Producto:       producto,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, t)
	})
	if txErr != nil {
		return nil, txErr
	}
	return ticketToResponse(t), nil
}

func (s *ticketService) ObtenerPorID(ctx context.Context, id uint) (*dto.TicketResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNoEncontrado
		}
		return nil, err
	}
	return ticketToResponse(t), nil
}

func (s *ticketService) Listar(ctx context.Context) ([]dto.TicketResponse, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, *ticketToResponse(&tickets[i]))
	}
	return result, nil
}

// Actualizar mutates folio and estatus only.
func (s *ticketService) Actualizar(ctx context.Context, id uint, req dto.ActualizarTicketRequest) (*dto.TicketResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNoEncontrado
		}
		return nil, err
	}

	if req.Folio != nil {
		t.Folio = req.Folio
	}
	if req.Estatus != nil {
		if *req.Estatus != model.EstatusPorPagar && *req.Estatus != model.EstatusPagado {
			return nil, ErrEstatusInvalido
		}
		t.Estatus = *req.Estatus
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return ticketToResponse(t), nil
}

// Eliminar removes the ticket; detalles and pagos fall with it. No totals
// or status recomputation happens on deletion.
func (s *ticketService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func detalleToResponse(d *model.TicketDetalle) dto.DetalleTicketResponse {
	resp := dto.DetalleTicketResponse{
		ID:             d.ID,
		ProductoID:     d.ProductoID,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		TotalFila:      d.TotalFila(),
	}
	if d.Producto != nil {
		resp.Producto = mapProducto(d.Producto)
	}
	return resp
}

func pagoToResponse(p *model.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:         p.ID,
		Folio:      p.Folio,
		TicketID:   p.TicketID,
		NumeroPago: p.NumeroPago,
		Fecha:      p.Fecha.Format(time.RFC3339),
		Monto:      p.Monto,
	}
}

func ticketToResponse(t *model.Ticket) *dto.TicketResponse {
	detalles := make([]dto.DetalleTicketResponse, 0, len(t.Detalles))
	for i := range t.Detalles {
		detalles = append(detalles, detalleToResponse(&t.Detalles[i]))
	}
	pagos := make([]dto.PagoResponse, 0, len(t.Pagos))
	for i := range t.Pagos {
		pagos = append(pagos, *pagoToResponse(&t.Pagos[i]))
	}
	var liquidacion *string
	if t.FechaLiquidacion != nil {
		f := t.FechaLiquidacion.Format(time.RFC3339)
		liquidacion = &f
	}
	return &dto.TicketResponse{
		ID:               t.ID,
		Folio:            t.Folio,
		FechaCreacion:    t.FechaCreacion.Format(time.RFC3339),
		FechaLiquidacion: liquidacion,
		Estatus:          t.Estatus,
		Detalles:         detalles,
		Pagos:            pagos,
		Total:            t.Total(),
		TotalPagado:      t.TotalPagado(),
		Pendiente:        t.Pendiente(),
	}
}
