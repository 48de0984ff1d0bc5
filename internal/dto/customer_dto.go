package dto

import (
	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BorrowedTankRequest struct {
	Brand    string `json:"brand"    validate:"required,oneof=PTT WP OTHER"`
	Size     string `json:"size"     validate:"required,oneof=48kg-2v 48kg 15kg 7kg 4kg other"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type PriceOverrideRequest struct {
	Brand string          `json:"brand" validate:"required,oneof=PTT WP OTHER"`
	Size  string          `json:"size"  validate:"required,oneof=48kg-2v 48kg 15kg 7kg 4kg other"`
	Price decimal.Decimal `json:"price" validate:"min=0"`
}

type CustomerRequest struct {
	Name          string                 `json:"name"   validate:"required,min=1"`
	Branch        string                 `json:"branch"`
	Price         decimal.Decimal        `json:"price"  validate:"min=0"`
	TankBrand     string                 `json:"tank_brand" validate:"omitempty,oneof=PTT WP OTHER"`
	TankSize      string                 `json:"tank_size"  validate:"omitempty,oneof=48kg-2v 48kg 15kg 7kg 4kg other"`
	PriceList     []PriceOverrideRequest `json:"price_list"     validate:"omitempty,dive"`
	BorrowedTanks []BorrowedTankRequest  `json:"borrowed_tanks" validate:"omitempty,dive"`
	Address       *string                `json:"address"`
	TaxID         *string                `json:"tax_id"`
	Notes         *string                `json:"notes"`
}

// ToModel maps the request onto a customer record. The ID is left zero for
// creation and set by the handler for updates.
func (r *CustomerRequest) ToModel() model.Customer {
	overrides := make([]model.PriceOverride, 0, len(r.PriceList))
	for _, o := range r.PriceList {
		overrides = append(overrides, model.PriceOverride{
			Brand: model.Brand(o.Brand),
			Size:  model.TankSize(o.Size),
			Price: o.Price,
		})
	}
	borrowed := make([]model.BorrowedTank, 0, len(r.BorrowedTanks))
	for _, bt := range r.BorrowedTanks {
		borrowed = append(borrowed, model.BorrowedTank{
			Brand:    model.Brand(bt.Brand),
			Size:     model.TankSize(bt.Size),
			Quantity: bt.Quantity,
		})
	}
	return model.Customer{
		Name:          r.Name,
		Branch:        r.Branch,
		Price:         r.Price,
		TankBrand:     model.Brand(r.TankBrand),
		TankSize:      model.TankSize(r.TankSize),
		PriceList:     datatypes.JSONSlice[model.PriceOverride](overrides),
		BorrowedTanks: datatypes.JSONSlice[model.BorrowedTank](borrowed),
		Address:       r.Address,
		TaxID:         r.TaxID,
		Notes:         r.Notes,
	}
}
