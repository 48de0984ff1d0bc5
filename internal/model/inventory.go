package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem counts cylinders of one (brand,size) or accessory stock.
// For gas items the (brand,size) pair is unique across the collection.
// The empty-cylinder count is derived, never stored: Total − Full − OnLoan.
type InventoryItem struct {
	ID       uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Category InventoryCategory `gorm:"type:varchar(20);not null" json:"category"`

	// Name labels accessory items; gas items are keyed by brand+size.
	Name      *string   `json:"name,omitempty"`
	TankBrand *Brand    `gorm:"type:varchar(20);uniqueIndex:idx_inventory_tank" json:"tank_brand,omitempty"`
	TankSize  *TankSize `gorm:"type:varchar(20);uniqueIndex:idx_inventory_tank" json:"tank_size,omitempty"`

	// CostPrice is the standard cost used for gross-profit computation when
	// a sale line carries no snapshot.
	CostPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost_price,omitempty"`

	Total  int `gorm:"not null;default:0" json:"total"`
	Full   int `gorm:"not null;default:0" json:"full"`
	OnLoan int `gorm:"not null;default:0" json:"on_loan"`

	AlertThreshold *int    `json:"alert_threshold,omitempty"`
	Notes          *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsGas reports whether the item is cylinder stock (vs an accessory).
func (i *InventoryItem) IsGas() bool { return i.Category == CategoryGas }

// Matches reports whether a gas item is keyed by the given (brand,size).
func (i *InventoryItem) Matches(brand Brand, size TankSize) bool {
	return i.TankBrand != nil && i.TankSize != nil && *i.TankBrand == brand && *i.TankSize == size
}

// Empty is the derived empty-cylinder count. It can go negative when counts
// were seeded wrong; callers decide whether to warn (see store).
func (i *InventoryItem) Empty() int { return i.Total - i.Full - i.OnLoan }

// LowStock reports whether the full count has reached the alert threshold.
func (i *InventoryItem) LowStock() bool {
	return i.AlertThreshold != nil && i.Full <= *i.AlertThreshold
}
