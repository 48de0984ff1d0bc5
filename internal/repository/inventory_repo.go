package repository

import (
	"context"

	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	List(ctx context.Context) ([]model.InventoryItem, error)
	Create(ctx context.Context, tx *gorm.DB, i *model.InventoryItem) error
	Update(ctx context.Context, tx *gorm.DB, i *model.InventoryItem) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	// AdjustFullTx shifts the full-cylinder counter by delta inside tx.
	AdjustFullTx(tx *gorm.DB, id uuid.UUID, delta int) error
	// AdjustOnLoanTx shifts the on-loan counter by delta inside tx,
	// clamped at zero.
	AdjustOnLoanTx(tx *gorm.DB, id uuid.UUID, delta int) error

	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) DB() *gorm.DB { return r.db }

func (r *inventoryRepo) List(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *inventoryRepo) Create(ctx context.Context, tx *gorm.DB, i *model.InventoryItem) error {
	return tx.WithContext(ctx).Create(i).Error
}

func (r *inventoryRepo) Update(ctx context.Context, tx *gorm.DB, i *model.InventoryItem) error {
	return tx.WithContext(ctx).Save(i).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.InventoryItem{}, id).Error
}

func (r *inventoryRepo) AdjustFullTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("full", gorm.Expr(`"full" + ?`, delta)).Error
}

func (r *inventoryRepo) AdjustOnLoanTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("on_loan", gorm.Expr("GREATEST(on_loan + ?, 0)", delta)).Error
}
