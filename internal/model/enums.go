package model

import "strings"

// Brand identifies a cylinder manufacturer.
type Brand string

const (
	BrandPTT   Brand = "PTT"
	BrandWP    Brand = "WP"
	BrandOther Brand = "OTHER"
)

// TankSize is the nominal cylinder size. The two 48 kg variants are distinct
// stock-keeping units (single valve vs double valve).
type TankSize string

const (
	Size48TwoValve TankSize = "48kg-2v"
	Size48         TankSize = "48kg"
	Size15         TankSize = "15kg"
	Size7          TankSize = "7kg"
	Size4          TankSize = "4kg"
	SizeOther      TankSize = "other"
)

// TankRef keys a gas inventory row. Accessories have no TankRef.
type TankRef struct {
	Brand Brand
	Size  TankSize
}

// PaymentMethod: "cash" | "transfer" | "credit"
type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayTransfer PaymentMethod = "transfer"
	PayCredit   PaymentMethod = "credit"
)

// IsCredit reports whether the method defers payment. Cash and bank transfer
// are both treated as settled for refill/sale statistics.
func (m PaymentMethod) IsCredit() bool { return m == PayCredit }

// InvoiceType: "cash_receipt" | "tax_invoice"
// Tax invoices add 7% VAT and require the buyer's billing address and tax ID.
type InvoiceType string

const (
	InvoiceCashReceipt InvoiceType = "cash_receipt"
	InvoiceTax         InvoiceType = "tax_invoice"
)

// InventoryCategory: "gas" | "accessory"
type InventoryCategory string

const (
	CategoryGas       InventoryCategory = "gas"
	CategoryAccessory InventoryCategory = "accessory"
)

// ExpenseType classifies an expense. The well-known set below is closed, but
// the shop may record arbitrary custom categories: any other non-empty string
// is a valid custom type. Known values stay comparable as constants while
// custom labels round-trip untouched.
type ExpenseType string

const (
	ExpenseRefill    ExpenseType = "refill"
	ExpenseTransport ExpenseType = "transport"
	ExpenseOverhead  ExpenseType = "overhead"
	ExpenseSalary    ExpenseType = "salary"
	ExpenseOther     ExpenseType = "other"
)

// ParseExpenseType normalizes raw input into an ExpenseType. Known labels map
// to their constant; anything else becomes a custom type. Empty input falls
// back to ExpenseOther.
func ParseExpenseType(s string) ExpenseType {
	t := ExpenseType(strings.TrimSpace(s))
	if t == "" {
		return ExpenseOther
	}
	return t
}

// Known reports whether t belongs to the closed, well-known set.
func (t ExpenseType) Known() bool {
	switch t {
	case ExpenseRefill, ExpenseTransport, ExpenseOverhead, ExpenseSalary, ExpenseOther:
		return true
	}
	return false
}

// IsRefill reports whether expenses of this type carry refill lines that
// increase full-cylinder stock.
func (t ExpenseType) IsRefill() bool { return t == ExpenseRefill }
