package dto

import (
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SaleItemRequest struct {
	Brand      string           `json:"brand"       validate:"required,oneof=PTT WP OTHER"`
	Size       string           `json:"size"        validate:"required,oneof=48kg-2v 48kg 15kg 7kg 4kg other"`
	Quantity   int              `json:"quantity"    validate:"required,min=1"`
	UnitPrice  decimal.Decimal  `json:"unit_price"  validate:"min=0"`
	TotalPrice decimal.Decimal  `json:"total_price" validate:"min=0"`
	CostPrice  *decimal.Decimal `json:"cost_price"`
}

type SaleRequest struct {
	CustomerID    string            `json:"customer_id" validate:"required,uuid"`
	Date          time.Time         `json:"date"        validate:"required"`
	Items         []SaleItemRequest `json:"items"       validate:"required,min=1,dive"`
	TotalAmount   decimal.Decimal   `json:"total_amount"   validate:"min=0"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash transfer credit"`
	InvoiceType   string            `json:"invoice_type"   validate:"required,oneof=cash_receipt tax_invoice"`
	InvoiceNumber string            `json:"invoice_number"`

	GasReturnKg    *decimal.Decimal `json:"gas_return_kg"`
	GasReturnPrice *decimal.Decimal `json:"gas_return_price"`
}

func (r *SaleRequest) ToModel() model.Sale {
	items := make([]model.SaleItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.SaleItem{
			Brand:      model.Brand(it.Brand),
			Size:       model.TankSize(it.Size),
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			CostPrice:  it.CostPrice,
		})
	}
	return model.Sale{
		Date:           r.Date,
		Items:          datatypes.JSONSlice[model.SaleItem](items),
		TotalAmount:    r.TotalAmount,
		PaymentMethod:  model.PaymentMethod(r.PaymentMethod),
		InvoiceType:    model.InvoiceType(r.InvoiceType),
		InvoiceNumber:  r.InvoiceNumber,
		GasReturnKg:    r.GasReturnKg,
		GasReturnPrice: r.GasReturnPrice,
	}
}
