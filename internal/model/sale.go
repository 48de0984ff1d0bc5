package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SaleItem is one line of a multi-item sale. CostPrice is a snapshot of the
// inventory cost at sale time; when nil, profit computation falls back to the
// inventory item's current cost price.
type SaleItem struct {
	Brand      Brand            `json:"brand"`
	Size       TankSize         `json:"size"`
	Quantity   int              `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	CostPrice  *decimal.Decimal `json:"cost_price,omitempty"`
}

// Sale records one sale transaction. Newer rows carry Items; rows written
// before multi-item support carry the single-line legacy fields instead.
// Invariant: TotalAmount = Σ item totals − (GasReturnKg × GasReturnPrice).
type Sale struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID uuid.UUID                      `gorm:"type:uuid;index;not null" json:"customer_id"`
	Date       time.Time                      `gorm:"index;not null" json:"date"`
	Items      datatypes.JSONSlice[SaleItem]  `json:"items,omitempty"`

	// Legacy single-line fields, used when Items is empty.
	TankBrand Brand            `gorm:"type:varchar(20)" json:"tank_brand"`
	TankSize  TankSize         `gorm:"type:varchar(20)" json:"tank_size"`
	Quantity  int              `gorm:"not null;default:0" json:"quantity"`
	UnitPrice decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0" json:"unit_price"`
	CostPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost_price,omitempty"`

	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	InvoiceType   InvoiceType     `gorm:"type:varchar(20);not null;default:'cash_receipt'" json:"invoice_type"`
	InvoiceNumber string          `json:"invoice_number"`

	// Partially-used gas returned by the customer at sale time, netted
	// against the sale at the agreed per-kg rate.
	GasReturnKg    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"gas_return_kg,omitempty"`
	GasReturnPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"gas_return_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lines returns the sale's line items, synthesizing a single line from the
// legacy fields when Items is empty. Aggregation and stock adjustment treat
// both shapes identically. The synthetic line total is UnitPrice × Quantity,
// not TotalAmount: the latter is already net of the gas-return deduction and
// reusing it would deduct the return twice downstream.
func (s *Sale) Lines() []SaleItem {
	if len(s.Items) > 0 {
		return s.Items
	}
	return []SaleItem{{
		Brand:      s.TankBrand,
		Size:       s.TankSize,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		TotalPrice: s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity))),
		CostPrice:  s.CostPrice,
	}}
}

// ReturnDeduction is the cash value of gas returned with this sale, or zero.
func (s *Sale) ReturnDeduction() decimal.Decimal {
	if s.GasReturnKg == nil || s.GasReturnPrice == nil {
		return decimal.Zero
	}
	return s.GasReturnKg.Mul(*s.GasReturnPrice)
}
