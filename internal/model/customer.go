package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BorrowedTank records empty cylinders lent to a customer, tracked against
// the matching inventory item's on-loan counter.
type BorrowedTank struct {
	Brand    Brand    `json:"brand"`
	Size     TankSize `json:"size"`
	Quantity int      `json:"quantity"`
}

// PriceOverride is a per-(brand,size) selling price that takes precedence
// over the customer's base price.
type PriceOverride struct {
	Brand Brand           `json:"brand"`
	Size  TankSize        `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Customer is a shop account. Address and TaxID are optional and only
// required when issuing a tax invoice for this customer.
type Customer struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name   string    `gorm:"index;not null" json:"name"`
	Branch string    `json:"branch"`
	// Price is the default VAT-inclusive selling price per cylinder.
	Price         decimal.Decimal                     `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	TankBrand     Brand                               `gorm:"type:varchar(20)" json:"tank_brand"`
	TankSize      TankSize                            `gorm:"type:varchar(20)" json:"tank_size"`
	PriceList     datatypes.JSONSlice[PriceOverride]  `json:"price_list,omitempty"`
	BorrowedTanks datatypes.JSONSlice[BorrowedTank]   `json:"borrowed_tanks,omitempty"`
	Address       *string                             `json:"address,omitempty"`
	TaxID         *string                             `gorm:"column:tax_id" json:"tax_id,omitempty"`
	Notes         *string                             `json:"notes,omitempty"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}

// PriceFor resolves the selling price for a (brand,size), preferring a
// price-list override and falling back to the base price.
func (c *Customer) PriceFor(brand Brand, size TankSize) decimal.Decimal {
	for _, o := range c.PriceList {
		if o.Brand == brand && o.Size == size {
			return o.Price
		}
	}
	return c.Price
}
