package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RefillItem is one line of a refill expense: cylinders sent to the supplier
// and returned full, increasing full-cylinder stock.
type RefillItem struct {
	Brand    Brand            `json:"brand"`
	Size     TankSize         `json:"size"`
	Quantity int              `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
}

// Expense records money leaving the shop. Refill expenses additionally carry
// RefillLines (or the legacy single-line fields) that feed the inventory
// adjustment engine.
type Expense struct {
	ID          uuid.UUID                        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date        time.Time                        `gorm:"index;not null" json:"date"`
	Type        ExpenseType                      `gorm:"type:varchar(60);not null" json:"type"`
	Description string                           `json:"description"`
	Payee       *string                          `json:"payee,omitempty"`
	Amount      decimal.Decimal                  `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod PaymentMethod                  `gorm:"type:varchar(20);not null" json:"payment_method"`
	RefillLines datatypes.JSONSlice[RefillItem]  `json:"refill_lines,omitempty"`

	// Legacy single-line refill fields, used when RefillLines is empty.
	RefillTankBrand *Brand    `gorm:"type:varchar(20)" json:"refill_tank_brand,omitempty"`
	RefillTankSize  *TankSize `gorm:"type:varchar(20)" json:"refill_tank_size,omitempty"`
	RefillQuantity  *int      `json:"refill_quantity,omitempty"`

	// Gas weight returned to the supplier and the cash credited for it.
	GasReturnKg     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"gas_return_kg,omitempty"`
	GasReturnAmount *decimal.Decimal `gorm:"type:decimal(12,2)" json:"gas_return_amount,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Refills returns the expense's refill lines, synthesizing one from the
// legacy fields when the list is empty. Non-refill expenses return nil.
func (e *Expense) Refills() []RefillItem {
	if len(e.RefillLines) > 0 {
		return e.RefillLines
	}
	if e.RefillTankBrand != nil && e.RefillTankSize != nil {
		qty := 0
		if e.RefillQuantity != nil {
			qty = *e.RefillQuantity
		}
		return []RefillItem{{Brand: *e.RefillTankBrand, Size: *e.RefillTankSize, Quantity: qty}}
	}
	return nil
}
