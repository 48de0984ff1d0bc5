package dto

import (
	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/shopspring/decimal"
)

type InventoryItemRequest struct {
	Category  string  `json:"category" validate:"required,oneof=gas accessory"`
	Name      *string `json:"name"`
	TankBrand *string `json:"tank_brand" validate:"omitempty,oneof=PTT WP OTHER"`
	TankSize  *string `json:"tank_size"  validate:"omitempty,oneof=48kg-2v 48kg 15kg 7kg 4kg other"`

	CostPrice *decimal.Decimal `json:"cost_price"`

	Total  int `json:"total"   validate:"min=0"`
	Full   int `json:"full"    validate:"min=0"`
	OnLoan int `json:"on_loan" validate:"min=0"`

	AlertThreshold *int    `json:"alert_threshold" validate:"omitempty,min=0"`
	Notes          *string `json:"notes"`
}

// Validate enforces the cross-field rules the tag syntax cannot express:
// gas items are keyed by brand+size, accessories by name.
func (r *InventoryItemRequest) Validate() string {
	if r.Category == string(model.CategoryGas) && (r.TankBrand == nil || r.TankSize == nil) {
		return "gas items require both tank_brand and tank_size"
	}
	if r.Category == string(model.CategoryAccessory) && (r.Name == nil || *r.Name == "") {
		return "accessory items require a name"
	}
	return ""
}

func (r *InventoryItemRequest) ToModel() model.InventoryItem {
	item := model.InventoryItem{
		Category:       model.InventoryCategory(r.Category),
		Name:           r.Name,
		CostPrice:      r.CostPrice,
		Total:          r.Total,
		Full:           r.Full,
		OnLoan:         r.OnLoan,
		AlertThreshold: r.AlertThreshold,
		Notes:          r.Notes,
	}
	if r.TankBrand != nil {
		b := model.Brand(*r.TankBrand)
		item.TankBrand = &b
	}
	if r.TankSize != nil {
		s := model.TankSize(*r.TankSize)
		item.TankSize = &s
	}
	// Accessories carry no tank key; a stray pair would collide with the
	// gas unique index.
	if item.Category == model.CategoryAccessory {
		item.TankBrand = nil
		item.TankSize = nil
	}
	return item
}
