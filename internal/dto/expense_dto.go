package dto

import (
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RefillItemRequest struct {
	Brand    string           `json:"brand"    validate:"required,oneof=PTT WP OTHER"`
	Size     string           `json:"size"     validate:"required,oneof=48kg-2v 48kg 15kg 7kg 4kg other"`
	Quantity int              `json:"quantity" validate:"required,min=1"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
}

// ExpenseRequest accepts both the well-known expense types and free-form
// custom labels; Type is normalized by ParseExpenseType, not an enum tag.
type ExpenseRequest struct {
	Date          time.Time           `json:"date"        validate:"required"`
	Type          string              `json:"type"`
	Description   string              `json:"description" validate:"required,min=1"`
	Payee         *string             `json:"payee"`
	Amount        decimal.Decimal     `json:"amount"         validate:"min=0"`
	PaymentMethod string              `json:"payment_method" validate:"required,oneof=cash transfer credit"`
	RefillLines   []RefillItemRequest `json:"refill_lines"   validate:"omitempty,dive"`

	GasReturnKg     *decimal.Decimal `json:"gas_return_kg"`
	GasReturnAmount *decimal.Decimal `json:"gas_return_amount"`
}

func (r *ExpenseRequest) ToModel() model.Expense {
	lines := make([]model.RefillItem, 0, len(r.RefillLines))
	for _, line := range r.RefillLines {
		lines = append(lines, model.RefillItem{
			Brand:    model.Brand(line.Brand),
			Size:     model.TankSize(line.Size),
			Quantity: line.Quantity,
			UnitCost: line.UnitCost,
		})
	}
	return model.Expense{
		Date:            r.Date,
		Type:            model.ParseExpenseType(r.Type),
		Description:     r.Description,
		Payee:           r.Payee,
		Amount:          r.Amount,
		PaymentMethod:   model.PaymentMethod(r.PaymentMethod),
		RefillLines:     datatypes.JSONSlice[model.RefillItem](lines),
		GasReturnKg:     r.GasReturnKg,
		GasReturnAmount: r.GasReturnAmount,
	}
}
