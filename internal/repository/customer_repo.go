package repository

import (
	"context"

	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository defines the gateway contract for the customers
// collection. The store depends on this interface, not on the concrete GORM
// implementation, enabling unit testing via stubs.
type CustomerRepository interface {
	// List returns all customers, newest first by creation time.
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, tx *gorm.DB, c *model.Customer) error
	Update(ctx context.Context, tx *gorm.DB, c *model.Customer) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so the store can open transactions.
	DB() *gorm.DB
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) DB() *gorm.DB { return r.db }

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Customer) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Customer) error {
	return tx.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.Customer{}, id).Error
}
