// Package document computes printable receipt and invoice figures.
package document

import (
	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/shopspring/decimal"
)

// vatRate is the Thai VAT rate applied to tax invoices (7%).
var vatRate = decimal.New(7, -2)

// SaleTotals are the monetary figures printed on a sale document.
// VAT applies to the net total (after the gas-return deduction) and only when
// the sale is invoiced as a tax invoice; cash receipts carry no VAT line.
type SaleTotals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	ReturnDeduction decimal.Decimal `json:"return_deduction"`
	NetTotal        decimal.Decimal `json:"net_total"`
	VAT             decimal.Decimal `json:"vat"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
}

// SaleTotalsFor derives the document figures for a sale.
func SaleTotalsFor(s *model.Sale) SaleTotals {
	subtotal := decimal.Zero
	for _, line := range s.Lines() {
		subtotal = subtotal.Add(line.TotalPrice)
	}
	deduction := s.ReturnDeduction()
	net := subtotal.Sub(deduction)

	vat := decimal.Zero
	if s.InvoiceType == model.InvoiceTax {
		vat = net.Mul(vatRate)
	}
	return SaleTotals{
		Subtotal:        subtotal,
		ReturnDeduction: deduction,
		NetTotal:        net,
		VAT:             vat,
		GrandTotal:      net.Add(vat),
	}
}

// ExpenseTotals are the figures printed on an expense receipt.
type ExpenseTotals struct {
	Amount         decimal.Decimal `json:"amount"`
	GasReturnKg    decimal.Decimal `json:"gas_return_kg"`
	GasReturnValue decimal.Decimal `json:"gas_return_value"`
	NetAmount      decimal.Decimal `json:"net_amount"`
}

// ExpenseTotalsFor derives the receipt figures for an expense. Gas returned
// to the supplier is credited against the amount paid.
func ExpenseTotalsFor(e *model.Expense) ExpenseTotals {
	kg := decimal.Zero
	if e.GasReturnKg != nil {
		kg = *e.GasReturnKg
	}
	value := decimal.Zero
	if e.GasReturnAmount != nil {
		value = *e.GasReturnAmount
	}
	return ExpenseTotals{
		Amount:         e.Amount,
		GasReturnKg:    kg,
		GasReturnValue: value,
		NetAmount:      e.Amount.Sub(value),
	}
}
