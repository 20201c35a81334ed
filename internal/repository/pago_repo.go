package repository

import (
	"context"

	"ticketera/internal/model"

	"gorm.io/gorm"
)

// PagoRepository defines the data access contract for payments.
type PagoRepository interface {
	// CreateTx inserts the pago inside the caller's transaction. When tx is
	// nil the write goes straight to the base connection (unit test mode).
	CreateTx(ctx context.Context, tx *gorm.DB, p *model.Pago) error
	FindByID(ctx context.Context, id uint) (*model.Pago, error)
	// ListByTicket returns the pagos of one ticket ordered by fecha descending.
	ListByTicket(ctx context.Context, ticketID uint) ([]model.Pago, error)
	Delete(ctx context.Context, id uint) error

	DB() *gorm.DB
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) CreateTx(ctx context.Context, tx *gorm.DB, p *model.Pago) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(p).Error
}

func (r *pagoRepo) FindByID(ctx context.Context, id uint) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pagoRepo) ListByTicket(ctx context.Context, ticketID uint) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("fecha DESC").
		Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Pago{}, id).Error
}

func (r *pagoRepo) DB() *gorm.DB { return r.db }
