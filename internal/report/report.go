// Package report derives daily and monthly summaries from the cached
// collections. Every function here is pure: summaries are recomputed from the
// inputs on each call and nothing is cached or mutated.
package report

import (
	"sort"
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownCustomerLabel names sales whose customer record no longer resolves.
const UnknownCustomerLabel = "Walk-in customer"

// CustomerSales is one row of the per-customer income ranking.
type CustomerSales struct {
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// RefillStat aggregates refilled cylinders per tank, split by settlement.
// Cash and bank transfer both count as paid; credit is tracked separately.
type RefillStat struct {
	Brand          model.Brand     `json:"brand"`
	Size           model.TankSize  `json:"size"`
	PaidQuantity   int             `json:"paid_quantity"`
	CreditQuantity int             `json:"credit_quantity"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
}

// DailySummary covers one calendar day in local time.
type DailySummary struct {
	Date            time.Time       `json:"date"`
	Income          decimal.Decimal `json:"income"`
	Expense         decimal.Decimal `json:"expense"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	CashIncome      decimal.Decimal `json:"cash_income"`
	TransferIncome  decimal.Decimal `json:"transfer_income"`
	CreditIncome    decimal.Decimal `json:"credit_income"`
	SalesByCustomer []CustomerSales `json:"sales_by_customer"`
	RefillStats     []RefillStat    `json:"refill_stats"`
}

// CustomerMonthly is one customer's month aggregate.
type CustomerMonthly struct {
	CustomerID  uuid.UUID       `json:"customer_id"`
	Name        string          `json:"name"`
	Branch      string          `json:"branch"`
	Tanks       int             `json:"tanks"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// TankSalesStat counts cylinders sold per tank across the month.
type TankSalesStat struct {
	Brand              model.Brand    `json:"brand"`
	Size               model.TankSize `json:"size"`
	PaidQuantity       int            `json:"paid_quantity"`
	CreditQuantity     int            `json:"credit_quantity"`
	TaxInvoiceQuantity int            `json:"tax_invoice_quantity"`
}

// ExpenseTypeStat aggregates one expense category across the month.
type ExpenseTypeStat struct {
	Type         model.ExpenseType `json:"type"`
	Count        int               `json:"count"`
	PaidAmount   decimal.Decimal   `json:"paid_amount"`
	CreditAmount decimal.Decimal   `json:"credit_amount"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	GasQuantity  int               `json:"gas_quantity"`
}

// MonthlySummary covers the calendar month containing Month.
type MonthlySummary struct {
	Month            time.Time         `json:"month"`
	Income           decimal.Decimal   `json:"income"`
	Expense          decimal.Decimal   `json:"expense"`
	GrossProfit      decimal.Decimal   `json:"gross_profit"`
	CashIncome       decimal.Decimal   `json:"cash_income"`
	TransferIncome   decimal.Decimal   `json:"transfer_income"`
	CreditIncome     decimal.Decimal   `json:"credit_income"`
	CustomerStats    []CustomerMonthly `json:"customer_stats"`
	TopCustomers     []CustomerMonthly `json:"top_customers"`
	GasReturnKg      decimal.Decimal   `json:"gas_return_kg"`
	GasReturnValue   decimal.Decimal   `json:"gas_return_value"`
	RefillStats      []RefillStat      `json:"refill_stats"`
	TankSales        []TankSalesStat   `json:"tank_sales"`
	ExpenseBreakdown []ExpenseTypeStat `json:"expense_breakdown"`
}

// Daily computes the summary for the calendar day containing date.
func Daily(date time.Time, sales []model.Sale, expenses []model.Expense, customers []model.Customer, inventory []model.InventoryItem) DailySummary {
	s := DailySummary{
		Date:           date,
		Income:         decimal.Zero,
		Expense:        decimal.Zero,
		GrossProfit:    decimal.Zero,
		CashIncome:     decimal.Zero,
		TransferIncome: decimal.Zero,
		CreditIncome:   decimal.Zero,
	}

	byCustomer := make(map[uuid.UUID]*CustomerSales)
	for i := range sales {
		sale := &sales[i]
		if !sameDay(sale.Date, date) {
			continue
		}
		s.Income = s.Income.Add(sale.TotalAmount)
		s.GrossProfit = s.GrossProfit.Add(saleProfit(sale, inventory))

		switch sale.PaymentMethod {
		case model.PayCash:
			s.CashIncome = s.CashIncome.Add(sale.TotalAmount)
		case model.PayTransfer:
			s.TransferIncome = s.TransferIncome.Add(sale.TotalAmount)
		case model.PayCredit:
			s.CreditIncome = s.CreditIncome.Add(sale.TotalAmount)
		}

		row, ok := byCustomer[sale.CustomerID]
		if !ok {
			row = &CustomerSales{
				CustomerID:   sale.CustomerID,
				CustomerName: customerName(customers, sale.CustomerID),
				TotalAmount:  decimal.Zero,
			}
			byCustomer[sale.CustomerID] = row
		}
		row.TotalAmount = row.TotalAmount.Add(sale.TotalAmount)
	}

	refills := newRefillAccumulator()
	for i := range expenses {
		e := &expenses[i]
		if !sameDay(e.Date, date) {
			continue
		}
		s.Expense = s.Expense.Add(e.Amount)
		refills.add(e)
	}

	for _, row := range byCustomer {
		s.SalesByCustomer = append(s.SalesByCustomer, *row)
	}
	sort.Slice(s.SalesByCustomer, func(i, j int) bool {
		if !s.SalesByCustomer[i].TotalAmount.Equal(s.SalesByCustomer[j].TotalAmount) {
			return s.SalesByCustomer[i].TotalAmount.GreaterThan(s.SalesByCustomer[j].TotalAmount)
		}
		return s.SalesByCustomer[i].CustomerName < s.SalesByCustomer[j].CustomerName
	})
	s.RefillStats = refills.sorted()
	return s
}

// Monthly computes the summary for the calendar month containing date.
func Monthly(date time.Time, sales []model.Sale, expenses []model.Expense, customers []model.Customer, inventory []model.InventoryItem) MonthlySummary {
	m := MonthlySummary{
		Month:          date,
		Income:         decimal.Zero,
		Expense:        decimal.Zero,
		GrossProfit:    decimal.Zero,
		CashIncome:     decimal.Zero,
		TransferIncome: decimal.Zero,
		CreditIncome:   decimal.Zero,
		GasReturnKg:    decimal.Zero,
		GasReturnValue: decimal.Zero,
	}

	byCustomer := make(map[uuid.UUID]*CustomerMonthly)
	tanks := make(map[model.TankRef]*TankSalesStat)
	var tankOrder []model.TankRef

	for i := range sales {
		sale := &sales[i]
		if !sameMonth(sale.Date, date) {
			continue
		}
		profit := saleProfit(sale, inventory)
		m.Income = m.Income.Add(sale.TotalAmount)
		m.GrossProfit = m.GrossProfit.Add(profit)

		switch sale.PaymentMethod {
		case model.PayCash:
			m.CashIncome = m.CashIncome.Add(sale.TotalAmount)
		case model.PayTransfer:
			m.TransferIncome = m.TransferIncome.Add(sale.TotalAmount)
		case model.PayCredit:
			m.CreditIncome = m.CreditIncome.Add(sale.TotalAmount)
		}

		if sale.GasReturnKg != nil {
			m.GasReturnKg = m.GasReturnKg.Add(*sale.GasReturnKg)
		}
		m.GasReturnValue = m.GasReturnValue.Add(sale.ReturnDeduction())

		row, ok := byCustomer[sale.CustomerID]
		if !ok {
			name, branch := customerNameBranch(customers, sale.CustomerID)
			row = &CustomerMonthly{
				CustomerID:  sale.CustomerID,
				Name:        name,
				Branch:      branch,
				TotalAmount: decimal.Zero,
				GrossProfit: decimal.Zero,
			}
			byCustomer[sale.CustomerID] = row
		}
		row.TotalAmount = row.TotalAmount.Add(sale.TotalAmount)
		row.GrossProfit = row.GrossProfit.Add(profit)

		for _, line := range sale.Lines() {
			row.Tanks += line.Quantity

			ref := model.TankRef{Brand: line.Brand, Size: line.Size}
			ts, ok := tanks[ref]
			if !ok {
				ts = &TankSalesStat{Brand: line.Brand, Size: line.Size}
				tanks[ref] = ts
				tankOrder = append(tankOrder, ref)
			}
			if sale.PaymentMethod.IsCredit() {
				ts.CreditQuantity += line.Quantity
			} else {
				ts.PaidQuantity += line.Quantity
			}
			if sale.InvoiceType == model.InvoiceTax {
				ts.TaxInvoiceQuantity += line.Quantity
			}
		}
	}

	refills := newRefillAccumulator()
	byType := make(map[model.ExpenseType]*ExpenseTypeStat)
	for i := range expenses {
		e := &expenses[i]
		if !sameMonth(e.Date, date) {
			continue
		}
		m.Expense = m.Expense.Add(e.Amount)
		refills.add(e)

		stat, ok := byType[e.Type]
		if !ok {
			stat = &ExpenseTypeStat{
				Type:         e.Type,
				PaidAmount:   decimal.Zero,
				CreditAmount: decimal.Zero,
				TotalAmount:  decimal.Zero,
			}
			byType[e.Type] = stat
		}
		stat.Count++
		stat.TotalAmount = stat.TotalAmount.Add(e.Amount)
		if e.PaymentMethod.IsCredit() {
			stat.CreditAmount = stat.CreditAmount.Add(e.Amount)
		} else {
			stat.PaidAmount = stat.PaidAmount.Add(e.Amount)
		}
		for _, line := range e.Refills() {
			stat.GasQuantity += line.Quantity
		}
	}

	for _, row := range byCustomer {
		m.CustomerStats = append(m.CustomerStats, *row)
	}
	sort.Slice(m.CustomerStats, func(i, j int) bool {
		if !m.CustomerStats[i].TotalAmount.Equal(m.CustomerStats[j].TotalAmount) {
			return m.CustomerStats[i].TotalAmount.GreaterThan(m.CustomerStats[j].TotalAmount)
		}
		return m.CustomerStats[i].Name < m.CustomerStats[j].Name
	})
	if len(m.CustomerStats) > 5 {
		m.TopCustomers = append([]CustomerMonthly(nil), m.CustomerStats[:5]...)
	} else {
		m.TopCustomers = append([]CustomerMonthly(nil), m.CustomerStats...)
	}

	sort.Slice(tankOrder, func(i, j int) bool {
		if tankOrder[i].Brand != tankOrder[j].Brand {
			return tankOrder[i].Brand < tankOrder[j].Brand
		}
		return tankOrder[i].Size < tankOrder[j].Size
	})
	for _, ref := range tankOrder {
		m.TankSales = append(m.TankSales, *tanks[ref])
	}

	for _, stat := range byType {
		m.ExpenseBreakdown = append(m.ExpenseBreakdown, *stat)
	}
	sort.Slice(m.ExpenseBreakdown, func(i, j int) bool {
		if !m.ExpenseBreakdown[i].TotalAmount.Equal(m.ExpenseBreakdown[j].TotalAmount) {
			return m.ExpenseBreakdown[i].TotalAmount.GreaterThan(m.ExpenseBreakdown[j].TotalAmount)
		}
		return m.ExpenseBreakdown[i].Type < m.ExpenseBreakdown[j].Type
	})

	m.RefillStats = refills.sorted()
	return m
}

// saleProfit is the sale's gross margin: Σ(line total − cost × qty) minus the
// gas-return deduction. Lines without a cost snapshot fall back to the
// inventory item's current cost; an untracked tank contributes zero cost.
func saleProfit(s *model.Sale, inventory []model.InventoryItem) decimal.Decimal {
	profit := decimal.Zero
	for _, line := range s.Lines() {
		cost := decimal.Zero
		if line.CostPrice != nil {
			cost = *line.CostPrice
		} else if c := currentCost(inventory, line.Brand, line.Size); c != nil {
			cost = *c
		}
		lineProfit := line.TotalPrice.Sub(cost.Mul(decimal.NewFromInt(int64(line.Quantity))))
		profit = profit.Add(lineProfit)
	}
	return profit.Sub(s.ReturnDeduction())
}

func currentCost(inventory []model.InventoryItem, brand model.Brand, size model.TankSize) *decimal.Decimal {
	for i := range inventory {
		if inventory[i].Matches(brand, size) {
			return inventory[i].CostPrice
		}
	}
	return nil
}

// customerName renders the display label for daily rows, "name (branch)"
// when the customer has a branch.
func customerName(customers []model.Customer, id uuid.UUID) string {
	name, branch := customerNameBranch(customers, id)
	if branch != "" {
		return name + " (" + branch + ")"
	}
	return name
}

func customerNameBranch(customers []model.Customer, id uuid.UUID) (string, string) {
	for i := range customers {
		if customers[i].ID == id {
			return customers[i].Name, customers[i].Branch
		}
	}
	return UnknownCustomerLabel, ""
}

// refillAccumulator folds refill expense lines into per-tank stats.
type refillAccumulator struct {
	stats map[model.TankRef]*RefillStat
}

func newRefillAccumulator() *refillAccumulator {
	return &refillAccumulator{stats: make(map[model.TankRef]*RefillStat)}
}

func (a *refillAccumulator) add(e *model.Expense) {
	lines := e.Refills()
	if len(lines) == 0 {
		return
	}

	// The expense amount is attributed per line when unit costs are present;
	// otherwise the whole amount lands on the first line's tank, matching how
	// single-line refills were recorded historically.
	for i, line := range lines {
		ref := model.TankRef{Brand: line.Brand, Size: line.Size}
		stat, ok := a.stats[ref]
		if !ok {
			stat = &RefillStat{
				Brand:        line.Brand,
				Size:         line.Size,
				PaidAmount:   decimal.Zero,
				CreditAmount: decimal.Zero,
			}
			a.stats[ref] = stat
		}

		amount := decimal.Zero
		if line.UnitCost != nil {
			amount = line.UnitCost.Mul(decimal.NewFromInt(int64(line.Quantity)))
		} else if i == 0 && len(lines) == 1 {
			amount = e.Amount
		}

		if e.PaymentMethod.IsCredit() {
			stat.CreditQuantity += line.Quantity
			stat.CreditAmount = stat.CreditAmount.Add(amount)
		} else {
			stat.PaidQuantity += line.Quantity
			stat.PaidAmount = stat.PaidAmount.Add(amount)
		}
	}
}

func (a *refillAccumulator) sorted() []RefillStat {
	refs := make([]model.TankRef, 0, len(a.stats))
	for ref := range a.stats {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Brand != refs[j].Brand {
			return refs[i].Brand < refs[j].Brand
		}
		return refs[i].Size < refs[j].Size
	})
	out := make([]RefillStat, 0, len(refs))
	for _, ref := range refs {
		out = append(out, *a.stats[ref])
	}
	return out
}

// sameDay reports whether a and b fall on the same calendar day in b's
// location. Midnight boundaries follow wall-clock time, not elapsed time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameMonth reports whether a and b fall in the same calendar month.
func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.In(b.Location()).Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}
