package service_test

// In-memory repository stubs. They satisfy the repository interfaces with
// map-backed storage so the services run without a database; DB() returns
// nil, which makes runTx call straight through.

import (
	"context"
	"sort"
	"time"

	"ticketera/internal/model"
	"ticketera/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Producto stub ─────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uint]*model.Producto
	seq       uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == 0 {
		r.seq++
		p.ID = r.seq
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	ids := make([]uint, 0, len(r.productos))
	for id := range r.productos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Producto, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.productos[id])
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Ticket stub ───────────────────────────────────────────────────────────────

type stubTicketRepo struct {
	tickets map[uint]*model.Ticket
	seq     uint
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{tickets: make(map[uint]*model.Ticket)}
}

func (r *stubTicketRepo) Create(_ context.Context, _ *gorm.DB, t *model.Ticket) error {
	if t.ID == 0 {
		r.seq++
		t.ID = r.seq
	}
	for i := range t.Detalles {
		t.Detalles[i].TicketID = t.ID
	}
	r.tickets[t.ID] = t
	return nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id uint) (*model.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Return a shallow copy so callers see a fresh load, as gorm would give.
	cp := *t
	return &cp, nil
}

func (r *stubTicketRepo) List(_ context.Context) ([]model.Ticket, error) {
	ids := make([]uint, 0, len(r.tickets))
	for id := range r.tickets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Ticket, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.tickets[id])
	}
	return out, nil
}

func (r *stubTicketRepo) Update(_ context.Context, t *model.Ticket) error {
	if _, ok := r.tickets[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.tickets[t.ID] = t
	return nil
}

func (r *stubTicketRepo) Delete(_ context.Context, id uint) error {
	delete(r.tickets, id)
	return nil
}

func (r *stubTicketRepo) MarcarPagadoTx(_ *gorm.DB, id uint, fecha time.Time) error {
	t, ok := r.tickets[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Estatus = model.EstatusPagado
	f := fecha
	t.FechaLiquidacion = &f
	return nil
}

func (r *stubTicketRepo) DB() *gorm.DB { return nil }

var _ repository.TicketRepository = (*stubTicketRepo)(nil)

// ── Pago stub ─────────────────────────────────────────────────────────────────

// stubPagoRepo shares the ticket map so that a created pago shows up in the
// owning ticket's Pagos on the next FindByID, like gorm's Preload would.
type stubPagoRepo struct {
	pagos      map[uint]*model.Pago
	seq        uint
	ticketRepo *stubTicketRepo
}

func newStubPagoRepo(ticketRepo *stubTicketRepo) *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uint]*model.Pago), ticketRepo: ticketRepo}
}

func (r *stubPagoRepo) CreateTx(_ context.Context, _ *gorm.DB, p *model.Pago) error {
	if p.ID == 0 {
		r.seq++
		p.ID = r.seq
	}
	r.pagos[p.ID] = p
	if t, ok := r.ticketRepo.tickets[p.TicketID]; ok {
		t.Pagos = append(t.Pagos, *p)
	}
	return nil
}

func (r *stubPagoRepo) FindByID(_ context.Context, id uint) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) ListByTicket(_ context.Context, ticketID uint) ([]model.Pago, error) {
	out := make([]model.Pago, 0)
	for _, p := range r.pagos {
		if p.TicketID == ticketID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (r *stubPagoRepo) Delete(_ context.Context, id uint) error {
	p, ok := r.pagos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if t, ok := r.ticketRepo.tickets[p.TicketID]; ok {
		kept := t.Pagos[:0]
		for _, tp := range t.Pagos {
			if tp.ID != id {
				kept = append(kept, tp)
			}
		}
		t.Pagos = kept
	}
	delete(r.pagos, id)
	return nil
}

func (r *stubPagoRepo) DB() *gorm.DB { return nil }

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func seedProducto(repo *stubProductoRepo, nombre string, precio float64) *model.Producto {
	n := nombre
	p := &model.Producto{Nombre: &n, PrecioUnitario: decimal.NewFromFloat(precio)}
	_ = repo.Create(context.Background(), p)
	return p
}

// seedTicket stores a ticket with the given (cantidad, precio) lines.
func seedTicket(repo *stubTicketRepo, folio string, lineas ...[2]float64) *model.Ticket {
	f := folio
	t := &model.Ticket{
		Folio:         &f,
		FechaCreacion: time.Now(),
		Estatus:       model.EstatusPorPagar,
	}
	for _, l := range lineas {
		t.Detalles = append(t.Detalles, model.TicketDetalle{
			ProductoID:     1,
			Cantidad:       int(l[0]),
			PrecioUnitario: decimal.NewFromFloat(l[1]),
		})
	}
	_ = repo.Create(context.Background(), nil, t)
	return t
}
