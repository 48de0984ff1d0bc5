package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/apierror"
	"github.com/appidartkitthana/GAS-System-management/internal/model"
	"github.com/appidartkitthana/GAS-System-management/internal/repository"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers []model.Customer
	listErr   error
	createErr error
	deletes   int
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	return r.customers, r.listErr
}
func (r *stubCustomerRepo) Create(_ context.Context, _ *gorm.DB, c *model.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
func (r *stubCustomerRepo) Update(_ context.Context, _ *gorm.DB, _ *model.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(_ context.Context, _ *gorm.DB, _ uuid.UUID) error {
	r.deletes++
	return nil
}
func (r *stubCustomerRepo) DB() *gorm.DB { return nil }

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubSaleRepo struct {
	sales     []model.Sale
	listErr   error
	createErr error
	updateErr error
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) { return r.sales, r.listErr }
func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
func (r *stubSaleRepo) Update(_ context.Context, _ *gorm.DB, _ *model.Sale) error { return r.updateErr }
func (r *stubSaleRepo) Delete(_ context.Context, _ *gorm.DB, _ uuid.UUID) error   { return nil }
func (r *stubSaleRepo) DB() *gorm.DB                                              { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubExpenseRepo struct {
	expenses []model.Expense
	listErr  error
}

func (r *stubExpenseRepo) List(_ context.Context) ([]model.Expense, error) {
	return r.expenses, r.listErr
}
func (r *stubExpenseRepo) Create(_ context.Context, _ *gorm.DB, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
func (r *stubExpenseRepo) Update(_ context.Context, _ *gorm.DB, _ *model.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(_ context.Context, _ *gorm.DB, _ uuid.UUID) error      { return nil }
func (r *stubExpenseRepo) DB() *gorm.DB                                                 { return nil }

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

type adjustment struct {
	id    uuid.UUID
	delta int
}

type stubInventoryRepo struct {
	items       []model.InventoryItem
	listErr     error
	fullAdjusts []adjustment
	loanAdjusts []adjustment
}

func (r *stubInventoryRepo) List(_ context.Context) ([]model.InventoryItem, error) {
	return r.items, r.listErr
}
func (r *stubInventoryRepo) Create(_ context.Context, _ *gorm.DB, i *model.InventoryItem) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
func (r *stubInventoryRepo) Update(_ context.Context, _ *gorm.DB, _ *model.InventoryItem) error {
	return nil
}
func (r *stubInventoryRepo) Delete(_ context.Context, _ *gorm.DB, _ uuid.UUID) error { return nil }
func (r *stubInventoryRepo) AdjustFullTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	r.fullAdjusts = append(r.fullAdjusts, adjustment{id: id, delta: delta})
	return nil
}
func (r *stubInventoryRepo) AdjustOnLoanTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	r.loanAdjusts = append(r.loanAdjusts, adjustment{id: id, delta: delta})
	return nil
}
func (r *stubInventoryRepo) DB() *gorm.DB { return nil }

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func gasItem(brand model.Brand, size model.TankSize, total, full, onLoan int, cost string) model.InventoryItem {
	b, s := brand, size
	item := model.InventoryItem{
		ID:        uuid.New(),
		Category:  model.CategoryGas,
		TankBrand: &b,
		TankSize:  &s,
		Total:     total,
		Full:      full,
		OnLoan:    onLoan,
	}
	if cost != "" {
		item.CostPrice = decPtr(cost)
	}
	return item
}

func newLoadedStore(t *testing.T, cust *stubCustomerRepo, sale *stubSaleRepo, exp *stubExpenseRepo, inv *stubInventoryRepo) *store.Store {
	t.Helper()
	st := store.New(cust, sale, exp, inv)
	require.NoError(t, st.Load(context.Background()))
	return st
}

func findItem(t *testing.T, st *store.Store, id uuid.UUID) model.InventoryItem {
	t.Helper()
	for _, item := range st.Inventory() {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("inventory item %s not in cache", id)
	return model.InventoryItem{}
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoadNamesEveryFailedCollection(t *testing.T) {
	cust := &stubCustomerRepo{listErr: errors.New("boom")}
	sale := &stubSaleRepo{}
	exp := &stubExpenseRepo{listErr: errors.New("bang")}
	inv := &stubInventoryRepo{}

	st := store.New(cust, sale, exp, inv)
	err := st.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "customers")
	assert.Contains(t, err.Error(), "expenses")
	assert.NotContains(t, err.Error(), "sales")
	// Loading state resolves even on failure.
	assert.True(t, st.Loaded())
}

func TestLoadPopulatesCollections(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 6, 2, "350")
	cust := &stubCustomerRepo{customers: []model.Customer{{ID: uuid.New(), Name: "A"}}}
	st := newLoadedStore(t, cust, &stubSaleRepo{}, &stubExpenseRepo{}, &stubInventoryRepo{items: []model.InventoryItem{item}})

	assert.Len(t, st.Customers(), 1)
	assert.Len(t, st.Inventory(), 1)
	it := findItem(t, st, item.ID)
	assert.Equal(t, 2, it.Empty())
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func TestCreateSaleInjectsCostAndDecrementsStock(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	sale := model.Sale{
		CustomerID: uuid.New(),
		Date:       time.Now(),
		Items: datatypes.JSONSlice[model.SaleItem]{{
			Brand: model.BrandPTT, Size: model.Size48, Quantity: 2,
			UnitPrice: dec("550"), TotalPrice: dec("1100"),
		}},
		TotalAmount:   dec("1100"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	created, err := st.CreateSale(context.Background(), sale)
	require.NoError(t, err)

	// Cost snapshot comes from the inventory item.
	require.NotNil(t, created.Items[0].CostPrice)
	assert.True(t, created.Items[0].CostPrice.Equal(dec("350")))

	// One gateway write of -2, mirrored in the cache.
	require.Len(t, inv.fullAdjusts, 1)
	assert.Equal(t, -2, inv.fullAdjusts[0].delta)
	assert.Equal(t, 6, findItem(t, st, item.ID).Full)

	assert.Len(t, st.Sales(), 1)
}

func TestCreateSaleUntrackedTankIsNoOp(t *testing.T) {
	inv := &stubInventoryRepo{}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	sale := model.Sale{
		CustomerID: uuid.New(),
		Date:       time.Now(),
		Items: datatypes.JSONSlice[model.SaleItem]{{
			Brand: model.BrandWP, Size: model.Size15, Quantity: 1,
			UnitPrice: dec("480"), TotalPrice: dec("480"),
		}},
		TotalAmount:   dec("480"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	_, err := st.CreateSale(context.Background(), sale)
	require.NoError(t, err)
	assert.Empty(t, inv.fullAdjusts)
}

func TestZeroQuantityLineIssuesNoWrite(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	sale := model.Sale{
		CustomerID: uuid.New(),
		Date:       time.Now(),
		Items: datatypes.JSONSlice[model.SaleItem]{{
			Brand: model.BrandPTT, Size: model.Size48, Quantity: 0,
		}},
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	_, err := st.CreateSale(context.Background(), sale)
	require.NoError(t, err)
	assert.Empty(t, inv.fullAdjusts)
	assert.Equal(t, 8, findItem(t, st, item.ID).Full)
}

func TestCreateSaleFailureLeavesCacheUntouched(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	saleRepo := &stubSaleRepo{createErr: errors.New("gateway down")}
	st := newLoadedStore(t, &stubCustomerRepo{}, saleRepo, &stubExpenseRepo{}, inv)

	sale := model.Sale{
		CustomerID:    uuid.New(),
		Date:          time.Now(),
		TankBrand:     model.BrandPTT,
		TankSize:      model.Size48,
		Quantity:      1,
		UnitPrice:     dec("550"),
		TotalAmount:   dec("550"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	_, err := st.CreateSale(context.Background(), sale)
	require.Error(t, err)

	assert.Empty(t, st.Sales())
	assert.Equal(t, 8, findItem(t, st, item.ID).Full)
}

func TestUpdateSaleRevertsThenReapplies(t *testing.T) {
	ptt := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	wp := gasItem(model.BrandWP, model.Size15, 10, 5, 0, "120")
	inv := &stubInventoryRepo{items: []model.InventoryItem{ptt, wp}}
	original := model.Sale{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Date:       time.Now(),
		Items: datatypes.JSONSlice[model.SaleItem]{{
			Brand: model.BrandPTT, Size: model.Size48, Quantity: 2,
			UnitPrice: dec("550"), TotalPrice: dec("1100"), CostPrice: decPtr("350"),
		}},
		TotalAmount:   dec("1100"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	saleRepo := &stubSaleRepo{sales: []model.Sale{original}}
	st := newLoadedStore(t, &stubCustomerRepo{}, saleRepo, &stubExpenseRepo{}, inv)

	updated := original
	updated.Items = datatypes.JSONSlice[model.SaleItem]{{
		Brand: model.BrandWP, Size: model.Size15, Quantity: 3,
		UnitPrice: dec("480"), TotalPrice: dec("1440"), CostPrice: decPtr("120"),
	}}
	updated.TotalAmount = dec("1440")

	_, err := st.UpdateSale(context.Background(), updated)
	require.NoError(t, err)

	// Revert +2 on the old tank, apply -3 on the new one.
	require.Len(t, inv.fullAdjusts, 2)
	assert.Equal(t, adjustment{id: ptt.ID, delta: +2}, inv.fullAdjusts[0])
	assert.Equal(t, adjustment{id: wp.ID, delta: -3}, inv.fullAdjusts[1])

	assert.Equal(t, 10, findItem(t, st, ptt.ID).Full)
	assert.Equal(t, 2, findItem(t, st, wp.ID).Full)
}

func TestUpdateSaleSameLinesNetsToZero(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	original := model.Sale{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		Date:          time.Now(),
		TankBrand:     model.BrandPTT,
		TankSize:      model.Size48,
		Quantity:      2,
		UnitPrice:     dec("550"),
		TotalAmount:   dec("1100"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	saleRepo := &stubSaleRepo{sales: []model.Sale{original}}
	st := newLoadedStore(t, &stubCustomerRepo{}, saleRepo, &stubExpenseRepo{}, inv)

	updated := original
	updated.PaymentMethod = model.PayTransfer

	_, err := st.UpdateSale(context.Background(), updated)
	require.NoError(t, err)

	// +2 then -2; the cached full count is back where it started.
	require.Len(t, inv.fullAdjusts, 2)
	assert.Equal(t, 8, findItem(t, st, item.ID).Full)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 6, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	sale := model.Sale{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		Date:          time.Now(),
		TankBrand:     model.BrandPTT,
		TankSize:      model.Size48,
		Quantity:      2,
		UnitPrice:     dec("550"),
		TotalAmount:   dec("1100"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	}
	saleRepo := &stubSaleRepo{sales: []model.Sale{sale}}
	st := newLoadedStore(t, &stubCustomerRepo{}, saleRepo, &stubExpenseRepo{}, inv)

	require.NoError(t, st.DeleteSale(context.Background(), sale.ID))
	assert.Empty(t, st.Sales())
	assert.Equal(t, 8, findItem(t, st, item.ID).Full)
}

func TestCreateTaxInvoiceRequiresCustomerTaxID(t *testing.T) {
	customer := model.Customer{ID: uuid.New(), Name: "No tax ID"}
	cust := &stubCustomerRepo{customers: []model.Customer{customer}}
	st := newLoadedStore(t, cust, &stubSaleRepo{}, &stubExpenseRepo{}, &stubInventoryRepo{})

	sale := model.Sale{
		CustomerID:    customer.ID,
		Date:          time.Now(),
		TankBrand:     model.BrandPTT,
		TankSize:      model.Size48,
		Quantity:      1,
		TotalAmount:   dec("550"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceTax,
	}
	_, err := st.CreateSale(context.Background(), sale)
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.CodeBusinessRule, apiErr.Code)
}

// ── Customers ─────────────────────────────────────────────────────────────────

func TestDeleteCustomerWithSalesIsRefusedBeforeGateway(t *testing.T) {
	customer := model.Customer{ID: uuid.New(), Name: "Busy"}
	cust := &stubCustomerRepo{customers: []model.Customer{customer}}
	saleRepo := &stubSaleRepo{sales: []model.Sale{{
		ID: uuid.New(), CustomerID: customer.ID, Date: time.Now(),
		TotalAmount: dec("550"), PaymentMethod: model.PayCash, InvoiceType: model.InvoiceCashReceipt,
	}}}
	st := newLoadedStore(t, cust, saleRepo, &stubExpenseRepo{}, &stubInventoryRepo{})

	err := st.DeleteCustomer(context.Background(), customer.ID)
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.CodeBusinessRule, apiErr.Code)
	assert.Zero(t, cust.deletes, "gateway must not be called")
	assert.Len(t, st.Customers(), 1)
}

func TestCreateCustomerAppliesLoanDeltas(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 5, 1, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	customer := model.Customer{
		Name: "Borrower",
		BorrowedTanks: datatypes.JSONSlice[model.BorrowedTank]{
			{Brand: model.BrandPTT, Size: model.Size48, Quantity: 3},
		},
	}
	_, err := st.CreateCustomer(context.Background(), customer)
	require.NoError(t, err)

	require.Len(t, inv.loanAdjusts, 1)
	assert.Equal(t, +3, inv.loanAdjusts[0].delta)
	assert.Equal(t, 4, findItem(t, st, item.ID).OnLoan)
}

func TestUpdateCustomerConsolidatesLoanEntries(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 5, 2, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	customer := model.Customer{
		ID:   uuid.New(),
		Name: "Split entries",
		BorrowedTanks: datatypes.JSONSlice[model.BorrowedTank]{
			{Brand: model.BrandPTT, Size: model.Size48, Quantity: 2},
		},
	}
	cust := &stubCustomerRepo{customers: []model.Customer{customer}}
	st := newLoadedStore(t, cust, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	// Same net quantity split across two entries of the same tank: no write.
	updated := customer
	updated.BorrowedTanks = datatypes.JSONSlice[model.BorrowedTank]{
		{Brand: model.BrandPTT, Size: model.Size48, Quantity: 1},
		{Brand: model.BrandPTT, Size: model.Size48, Quantity: 1},
	}
	_, err := st.UpdateCustomer(context.Background(), updated)
	require.NoError(t, err)
	assert.Empty(t, inv.loanAdjusts)
	assert.Equal(t, 2, findItem(t, st, item.ID).OnLoan)
}

func TestUpdateCustomerAppliesNetLoanDelta(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 5, 2, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	customer := model.Customer{
		ID:   uuid.New(),
		Name: "Edited",
		BorrowedTanks: datatypes.JSONSlice[model.BorrowedTank]{
			{Brand: model.BrandPTT, Size: model.Size48, Quantity: 2},
		},
	}
	cust := &stubCustomerRepo{customers: []model.Customer{customer}}
	st := newLoadedStore(t, cust, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	updated := customer
	updated.BorrowedTanks = datatypes.JSONSlice[model.BorrowedTank]{
		{Brand: model.BrandPTT, Size: model.Size48, Quantity: 5},
	}
	_, err := st.UpdateCustomer(context.Background(), updated)
	require.NoError(t, err)

	require.Len(t, inv.loanAdjusts, 1)
	assert.Equal(t, +3, inv.loanAdjusts[0].delta)
	assert.Equal(t, 5, findItem(t, st, item.ID).OnLoan)
}

func TestDeleteCustomerReleasesLoansClampedAtZero(t *testing.T) {
	// Counter was seeded lower than the borrowed quantity; the release clamps
	// at zero instead of going negative.
	item := gasItem(model.BrandPTT, model.Size48, 10, 5, 2, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	customer := model.Customer{
		ID:   uuid.New(),
		Name: "Over-borrowed",
		BorrowedTanks: datatypes.JSONSlice[model.BorrowedTank]{
			{Brand: model.BrandPTT, Size: model.Size48, Quantity: 5},
		},
	}
	cust := &stubCustomerRepo{customers: []model.Customer{customer}}
	st := newLoadedStore(t, cust, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	require.NoError(t, st.DeleteCustomer(context.Background(), customer.ID))

	require.Len(t, inv.loanAdjusts, 1)
	assert.Equal(t, -5, inv.loanAdjusts[0].delta)
	assert.Equal(t, 0, findItem(t, st, item.ID).OnLoan)
}

// ── Expenses ──────────────────────────────────────────────────────────────────

func TestCreateRefillExpenseIncrementsStock(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 3, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	expense := model.Expense{
		Date:          time.Now(),
		Type:          model.ExpenseRefill,
		Description:   "supplier refill",
		Amount:        dec("3500"),
		PaymentMethod: model.PayCash,
		RefillLines: datatypes.JSONSlice[model.RefillItem]{
			{Brand: model.BrandPTT, Size: model.Size48, Quantity: 5},
		},
	}
	_, err := st.CreateExpense(context.Background(), expense)
	require.NoError(t, err)

	require.Len(t, inv.fullAdjusts, 1)
	assert.Equal(t, +5, inv.fullAdjusts[0].delta)
	assert.Equal(t, 8, findItem(t, st, item.ID).Full)
}

func TestLegacyRefillFieldsAdjustStock(t *testing.T) {
	item := gasItem(model.BrandWP, model.Size15, 10, 3, 0, "120")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	brand, size, qty := model.BrandWP, model.Size15, 4
	expense := model.Expense{
		Date:            time.Now(),
		Type:            model.ExpenseRefill,
		Description:     "legacy row",
		Amount:          dec("480"),
		PaymentMethod:   model.PayTransfer,
		RefillTankBrand: &brand,
		RefillTankSize:  &size,
		RefillQuantity:  &qty,
	}
	_, err := st.CreateExpense(context.Background(), expense)
	require.NoError(t, err)
	assert.Equal(t, 7, findItem(t, st, item.ID).Full)
}

func TestDeleteRefillExpenseRevertsStock(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	expense := model.Expense{
		ID:            uuid.New(),
		Date:          time.Now(),
		Type:          model.ExpenseRefill,
		Description:   "to delete",
		Amount:        dec("3500"),
		PaymentMethod: model.PayCash,
		RefillLines: datatypes.JSONSlice[model.RefillItem]{
			{Brand: model.BrandPTT, Size: model.Size48, Quantity: 5},
		},
	}
	expRepo := &stubExpenseRepo{expenses: []model.Expense{expense}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, expRepo, inv)

	require.NoError(t, st.DeleteExpense(context.Background(), expense.ID))
	assert.Equal(t, 3, findItem(t, st, item.ID).Full)
}

func TestNonRefillExpenseTouchesNoStock(t *testing.T) {
	item := gasItem(model.BrandPTT, model.Size48, 10, 8, 0, "350")
	inv := &stubInventoryRepo{items: []model.InventoryItem{item}}
	st := newLoadedStore(t, &stubCustomerRepo{}, &stubSaleRepo{}, &stubExpenseRepo{}, inv)

	expense := model.Expense{
		Date:          time.Now(),
		Type:          model.ExpenseTransport,
		Description:   "fuel",
		Amount:        dec("500"),
		PaymentMethod: model.PayCash,
	}
	_, err := st.CreateExpense(context.Background(), expense)
	require.NoError(t, err)
	assert.Empty(t, inv.fullAdjusts)
}

// ── Report date ───────────────────────────────────────────────────────────────

func TestSetReportDateScopesSummaries(t *testing.T) {
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	sale := model.Sale{
		ID: uuid.New(), CustomerID: uuid.New(),
		Date:        day.Add(10 * time.Hour),
		TankBrand:   model.BrandPTT, TankSize: model.Size48, Quantity: 1,
		UnitPrice:   dec("550"),
		TotalAmount: dec("550"), PaymentMethod: model.PayCash, InvoiceType: model.InvoiceCashReceipt,
	}
	saleRepo := &stubSaleRepo{sales: []model.Sale{sale}}
	st := newLoadedStore(t, &stubCustomerRepo{}, saleRepo, &stubExpenseRepo{}, &stubInventoryRepo{})

	st.SetReportDate(day)
	assert.True(t, st.DailySummary().Income.Equal(dec("550")))

	st.SetReportDate(day.AddDate(0, 0, 1))
	assert.True(t, st.DailySummary().Income.IsZero())
}
