package repository

import (
	"context"

	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	// List returns all expenses, newest first by expense date.
	List(ctx context.Context) ([]model.Expense, error)
	Create(ctx context.Context, tx *gorm.DB, e *model.Expense) error
	Update(ctx context.Context, tx *gorm.DB, e *model.Expense) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) DB() *gorm.DB { return r.db }

func (r *expenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Create(ctx context.Context, tx *gorm.DB, e *model.Expense) error {
	return tx.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) Update(ctx context.Context, tx *gorm.DB, e *model.Expense) error {
	return tx.WithContext(ctx).Save(e).Error
}

func (r *expenseRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.Expense{}, id).Error
}
