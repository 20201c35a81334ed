package repository

import (
	"context"
	"time"

	"ticketera/internal/model"

	"gorm.io/gorm"
)

// TicketRepository defines the data access contract for tickets and their
// owned detalles. Eager loading matters here: the settlement engine needs
// detalles and pagos loaded before it can compute totals, so FindByID always
// preloads both.
type TicketRepository interface {
	// Create persists the ticket together with its detalles. When tx is
	// non-nil the write joins that transaction.
	Create(ctx context.Context, tx *gorm.DB, t *model.Ticket) error
	// FindByID loads the ticket with detalles (and their productos) and pagos.
	FindByID(ctx context.Context, id uint) (*model.Ticket, error)
	// List loads all tickets with detalles (and productos) and pagos, same as
	// FindByID: responses compute totalPagado and pendiente per ticket, so a
	// listing without pagos would report every ticket as unpaid.
	List(ctx context.Context) ([]model.Ticket, error)
	Update(ctx context.Context, t *model.Ticket) error
	Delete(ctx context.Context, id uint) error

	// MarcarPagadoTx flips estatus to "Pagado" and stamps fecha_liquidacion
	// inside the caller's transaction.
	MarcarPagadoTx(tx *gorm.DB, id uint, fecha time.Time) error

	DB() *gorm.DB
}

type ticketRepo struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) TicketRepository { return &ticketRepo{db: db} }

func (r *ticketRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Ticket) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(t).Error
}

func (r *ticketRepo) FindByID(ctx context.Context, id uint) (*model.Ticket, error) {
	var t model.Ticket
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Pagos").
		First(&t, id).Error
	return &t, err
}

func (r *ticketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Pagos").
		Order("id ASC").
		Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepo) Update(ctx context.Context, t *model.Ticket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *ticketRepo) Delete(ctx context.Context, id uint) error {
	// Detalles and pagos fall with the ticket via the FK cascade.
	return r.db.WithContext(ctx).Delete(&model.Ticket{}, id).Error
}

func (r *ticketRepo) MarcarPagadoTx(tx *gorm.DB, id uint, fecha time.Time) error {
	return tx.Model(&model.Ticket{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estatus":           model.EstatusPagado,
		"fecha_liquidacion": fecha,
	}).Error
}

func (r *ticketRepo) DB() *gorm.DB { return r.db }
