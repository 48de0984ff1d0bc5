// Package export renders summaries into downloadable spreadsheets.
package export

import (
	"fmt"

	"github.com/appidartkitthana/GAS-System-management/internal/report"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetCustomer = "Customers"
	sheetRefills  = "Refills & Returns"
	sheetExpenses = "Expense Breakdown"
)

// MonthlyWorkbook builds an Excel workbook for one monthly summary. The
// caller owns the returned file and should stream it with File.Write.
func MonthlyWorkbook(m report.MonthlySummary) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetSummary)

	if err := writeSummarySheet(f, m); err != nil {
		return nil, err
	}
	if err := writeCustomerSheet(f, m); err != nil {
		return nil, err
	}
	if err := writeRefillSheet(f, m); err != nil {
		return nil, err
	}
	if err := writeExpenseSheet(f, m); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, m report.MonthlySummary) error {
	rows := [][]interface{}{
		{"Month", m.Month.Format("2006-01")},
		{},
		{"Income", money(m.Income)},
		{"Expense", money(m.Expense)},
		{"Gross profit", money(m.GrossProfit)},
		{},
		{"Cash income", money(m.CashIncome)},
		{"Transfer income", money(m.TransferIncome)},
		{"Credit income", money(m.CreditIncome)},
		{},
		{"Gas returned (kg)", money(m.GasReturnKg)},
		{"Gas return value", money(m.GasReturnValue)},
	}
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return err
	}

	row := len(rows) + 2
	if err := f.SetCellValue(sheetSummary, cell(1, row), "Tank sales"); err != nil {
		return err
	}
	row++
	header := []interface{}{"Brand", "Size", "Paid qty", "Credit qty", "Tax invoice qty"}
	if err := f.SetSheetRow(sheetSummary, cell(1, row), &header); err != nil {
		return err
	}
	for _, ts := range m.TankSales {
		row++
		line := []interface{}{string(ts.Brand), string(ts.Size), ts.PaidQuantity, ts.CreditQuantity, ts.TaxInvoiceQuantity}
		if err := f.SetSheetRow(sheetSummary, cell(1, row), &line); err != nil {
			return err
		}
	}
	return nil
}

func writeCustomerSheet(f *excelize.File, m report.MonthlySummary) error {
	if _, err := f.NewSheet(sheetCustomer); err != nil {
		return err
	}
	header := []interface{}{"Customer", "Branch", "Tanks", "Total", "Gross profit"}
	if err := f.SetSheetRow(sheetCustomer, "A1", &header); err != nil {
		return err
	}
	for i, c := range m.CustomerStats {
		line := []interface{}{c.Name, c.Branch, c.Tanks, money(c.TotalAmount), money(c.GrossProfit)}
		if err := f.SetSheetRow(sheetCustomer, cell(1, i+2), &line); err != nil {
			return err
		}
	}
	return nil
}

func writeRefillSheet(f *excelize.File, m report.MonthlySummary) error {
	if _, err := f.NewSheet(sheetRefills); err != nil {
		return err
	}
	header := []interface{}{"Brand", "Size", "Paid qty", "Paid amount", "Credit qty", "Credit amount"}
	if err := f.SetSheetRow(sheetRefills, "A1", &header); err != nil {
		return err
	}
	for i, r := range m.RefillStats {
		line := []interface{}{string(r.Brand), string(r.Size), r.PaidQuantity, money(r.PaidAmount), r.CreditQuantity, money(r.CreditAmount)}
		if err := f.SetSheetRow(sheetRefills, cell(1, i+2), &line); err != nil {
			return err
		}
	}
	return nil
}

func writeExpenseSheet(f *excelize.File, m report.MonthlySummary) error {
	if _, err := f.NewSheet(sheetExpenses); err != nil {
		return err
	}
	header := []interface{}{"Type", "Count", "Paid", "Credit", "Total", "Gas qty"}
	if err := f.SetSheetRow(sheetExpenses, "A1", &header); err != nil {
		return err
	}
	for i, e := range m.ExpenseBreakdown {
		line := []interface{}{string(e.Type), e.Count, money(e.PaidAmount), money(e.CreditAmount), money(e.TotalAmount), e.GasQuantity}
		if err := f.SetSheetRow(sheetExpenses, cell(1, i+2), &line); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := row
		if err := f.SetSheetRow(sheet, cell(1, i+1), &r); err != nil {
			return err
		}
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	if name == "" {
		return fmt.Sprintf("A%d", row)
	}
	return name
}
