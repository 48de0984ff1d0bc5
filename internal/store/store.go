// Package store owns the canonical in-process copy of the four collections
// (customers, sales, expenses, inventory) and mediates every read and write
// between the presentation boundary and the persistence gateway. Mutations
// update the remote store first and the local cache only after commit, so the
// cache never reflects a write the gateway rejected.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/apierror"
	"github.com/appidartkitthana/GAS-System-management/internal/model"
	"github.com/appidartkitthana/GAS-System-management/internal/report"
	"github.com/appidartkitthana/GAS-System-management/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Store struct {
	mu sync.RWMutex

	customers []model.Customer
	sales     []model.Sale
	expenses  []model.Expense
	inventory []model.InventoryItem

	// reportDate scopes the daily and monthly summaries.
	reportDate time.Time
	loaded     bool

	customerRepo  repository.CustomerRepository
	saleRepo      repository.SaleRepository
	expenseRepo   repository.ExpenseRepository
	inventoryRepo repository.InventoryRepository
}

func New(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	inventoryRepo repository.InventoryRepository,
) *Store {
	return &Store{
		customerRepo:  customerRepo,
		saleRepo:      saleRepo,
		expenseRepo:   expenseRepo,
		inventoryRepo: inventoryRepo,
		reportDate:    time.Now(),
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Load populates the cache with one concurrent bulk read per collection.
// All four reads are awaited; every collection that failed is named in the
// returned error. The loading state ends uniformly on success or failure.
func (s *Store) Load(ctx context.Context) error {
	var (
		customers []model.Customer
		sales     []model.Sale
		expenses  []model.Expense
		inventory []model.InventoryItem

		errs = make(map[string]error, 4)
		emu  sync.Mutex
	)

	fail := func(collection string, err error) {
		emu.Lock()
		errs[collection] = err
		emu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if customers, err = s.customerRepo.List(ctx); err != nil {
			fail("customers", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sales, err = s.saleRepo.List(ctx); err != nil {
			fail("sales", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = s.expenseRepo.List(ctx); err != nil {
			fail("expenses", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if inventory, err = s.inventoryRepo.List(ctx); err != nil {
			fail("inventory", err)
		}
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	if errs["customers"] == nil {
		s.customers = customers
	}
	if errs["sales"] == nil {
		s.sales = sales
	}
	if errs["expenses"] == nil {
		s.expenses = expenses
	}
	if errs["inventory"] == nil {
		s.inventory = inventory
	}
	s.loaded = true
	s.mu.Unlock()

	if len(errs) > 0 {
		failed := make([]string, 0, len(errs))
		for _, name := range []string{"customers", "sales", "expenses", "inventory"} {
			if err := errs[name]; err != nil {
				failed = append(failed, name)
				log.Error().Err(err).Str("collection", name).Msg("initial load failed")
			}
		}
		return fmt.Errorf("initial load failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

// Loaded reports whether the initial bulk load has resolved.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Customer(nil), s.customers...)
}

func (s *Store) Sales() []model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Sale(nil), s.sales...)
}

func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Expense(nil), s.expenses...)
}

func (s *Store) Inventory() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.InventoryItem(nil), s.inventory...)
}

func (s *Store) CustomerByID(id uuid.UUID) (*model.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c, true
		}
	}
	return nil, false
}

// LowStockItems returns inventory items at or below their alert threshold.
func (s *Store) LowStockItems() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.InventoryItem
	for _, item := range s.inventory {
		if item.LowStock() {
			out = append(out, item)
		}
	}
	return out
}

// ── Report date & summaries ──────────────────────────────────────────────────

func (s *Store) ReportDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reportDate
}

func (s *Store) SetReportDate(t time.Time) {
	s.mu.Lock()
	s.reportDate = t
	s.mu.Unlock()
}

// DailySummary recomputes the daily summary for the current report date.
// Summaries are always derived from the live snapshot; nothing is cached.
func (s *Store) DailySummary() report.DailySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.Daily(s.reportDate, s.sales, s.expenses, s.customers, s.inventory)
}

// DailySummaryFor computes the daily summary for an arbitrary date without
// touching the stored report date.
func (s *Store) DailySummaryFor(date time.Time) report.DailySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.Daily(date, s.sales, s.expenses, s.customers, s.inventory)
}

func (s *Store) MonthlySummary() report.MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.Monthly(s.reportDate, s.sales, s.expenses, s.customers, s.inventory)
}

func (s *Store) MonthlySummaryFor(date time.Time) report.MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.Monthly(date, s.sales, s.expenses, s.customers, s.inventory)
}

// ── Customers ────────────────────────────────────────────────────────────────

func (s *Store) CreateCustomer(ctx context.Context, c model.Customer) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deltas []stockDelta
	err := runTx(ctx, s.customerRepo.DB(), func(tx *gorm.DB) error {
		if err := s.customerRepo.Create(ctx, tx, &c); err != nil {
			return err
		}
		var err error
		deltas, err = s.applyLoanDeltas(tx, nil, c.BorrowedTanks)
		return err
	})
	if err != nil {
		return nil, s.fail("create customer", err)
	}

	s.customers = append([]model.Customer{c}, s.customers...)
	s.commitStockDeltas(deltas)
	return &c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c model.Customer) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.findCustomer(c.ID)
	if old == nil {
		return nil, apierror.NotFound("customer not found")
	}
	c.CreatedAt = old.CreatedAt

	var deltas []stockDelta
	err := runTx(ctx, s.customerRepo.DB(), func(tx *gorm.DB) error {
		if err := s.customerRepo.Update(ctx, tx, &c); err != nil {
			return err
		}
		var err error
		deltas, err = s.applyLoanDeltas(tx, old.BorrowedTanks, c.BorrowedTanks)
		return err
	})
	if err != nil {
		return nil, s.fail("update customer", err)
	}

	s.replaceCustomer(c)
	s.commitStockDeltas(deltas)
	return &c, nil
}

// DeleteCustomer refuses to delete a customer with recorded sales; that rule
// is validated against the cache before any gateway call. Deleting a customer
// releases their borrowed cylinders back to the on-loan counters.
func (s *Store) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].CustomerID == id {
			return apierror.BusinessRule("this customer has recorded sales and cannot be deleted; remove the related sales first")
		}
	}
	old := s.findCustomer(id)
	if old == nil {
		return apierror.NotFound("customer not found")
	}

	var deltas []stockDelta
	err := runTx(ctx, s.customerRepo.DB(), func(tx *gorm.DB) error {
		if err := s.customerRepo.Delete(ctx, tx, id); err != nil {
			return err
		}
		var err error
		deltas, err = s.applyLoanDeltas(tx, old.BorrowedTanks, nil)
		return err
	})
	if err != nil {
		return s.fail("delete customer", err)
	}

	s.customers = removeByID(s.customers, id, func(c model.Customer) uuid.UUID { return c.ID })
	s.commitStockDeltas(deltas)
	return nil
}

// ── Sales ────────────────────────────────────────────────────────────────────

func (s *Store) CreateSale(ctx context.Context, sale model.Sale) (*model.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sale.InvoiceType == model.InvoiceTax {
		c := s.findCustomer(sale.CustomerID)
		if c == nil || c.TaxID == nil || *c.TaxID == "" {
			return nil, apierror.BusinessRule("a tax invoice requires the customer's tax ID; fill it in on the customer record first")
		}
	}

	s.injectCostSnapshots(&sale)

	var deltas []stockDelta
	err := runTx(ctx, s.saleRepo.DB(), func(tx *gorm.DB) error {
		if err := s.saleRepo.Create(ctx, tx, &sale); err != nil {
			return err
		}
		var err error
		deltas, err = s.applySaleStock(tx, &sale, -1)
		return err
	})
	if err != nil {
		return nil, s.fail("create sale", err)
	}

	s.sales = append([]model.Sale{sale}, s.sales...)
	s.commitStockDeltas(deltas)
	return &sale, nil
}

// UpdateSale reverses the original lines' stock effect, persists the update,
// then applies the new lines in one transaction, net-consistent even when
// brand, size and quantity all changed.
func (s *Store) UpdateSale(ctx context.Context, sale model.Sale) (*model.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.findSale(sale.ID)
	if old == nil {
		return nil, apierror.NotFound("sale not found")
	}
	sale.CreatedAt = old.CreatedAt

	var deltas []stockDelta
	err := runTx(ctx, s.saleRepo.DB(), func(tx *gorm.DB) error {
		revert, err := s.applySaleStock(tx, old, +1)
		if err != nil {
			return err
		}
		if err := s.saleRepo.Update(ctx, tx, &sale); err != nil {
			return err
		}
		apply, err := s.applySaleStock(tx, &sale, -1)
		if err != nil {
			return err
		}
		deltas = append(revert, apply...)
		return nil
	})
	if err != nil {
		return nil, s.fail("update sale", err)
	}

	s.replaceSale(sale)
	s.commitStockDeltas(deltas)
	return &sale, nil
}

func (s *Store) DeleteSale(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.findSale(id)
	if old == nil {
		return apierror.NotFound("sale not found")
	}

	var deltas []stockDelta
	err := runTx(ctx, s.saleRepo.DB(), func(tx *gorm.DB) error {
		if err := s.saleRepo.Delete(ctx, tx, id); err != nil {
			return err
		}
		var err error
		deltas, err = s.applySaleStock(tx, old, +1)
		return err
	})
	if err != nil {
		return s.fail("delete sale", err)
	}

	s.sales = removeByID(s.sales, id, func(v model.Sale) uuid.UUID { return v.ID })
	s.commitStockDeltas(deltas)
	return nil
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (s *Store) CreateExpense(ctx context.Context, e model.Expense) (*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deltas []stockDelta
	err := runTx(ctx, s.expenseRepo.DB(), func(tx *gorm.DB) error {
		if err := s.expenseRepo.Create(ctx, tx, &e); err != nil {
			return err
		}
		var err error
		deltas, err = s.applyRefillStock(tx, &e, +1)
		return err
	})
	if err != nil {
		return nil, s.fail("create expense", err)
	}

	s.expenses = append([]model.Expense{e}, s.expenses...)
	s.commitStockDeltas(deltas)
	return &e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e model.Expense) (*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.findExpense(e.ID)
	if old == nil {
		return nil, apierror.NotFound("expense not found")
	}
	e.CreatedAt = old.CreatedAt

	var deltas []stockDelta
	err := runTx(ctx, s.expenseRepo.DB(), func(tx *gorm.DB) error {
		revert, err := s.applyRefillStock(tx, old, -1)
		if err != nil {
			return err
		}
		if err := s.expenseRepo.Update(ctx, tx, &e); err != nil {
			return err
		}
		apply, err := s.applyRefillStock(tx, &e, +1)
		if err != nil {
			return err
		}
		deltas = append(revert, apply...)
		return nil
	})
	if err != nil {
		return nil, s.fail("update expense", err)
	}

	s.replaceExpense(e)
	s.commitStockDeltas(deltas)
	return &e, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.findExpense(id)
	if old == nil {
		return apierror.NotFound("expense not found")
	}

	var deltas []stockDelta
	err := runTx(ctx, s.expenseRepo.DB(), func(tx *gorm.DB) error {
		if err := s.expenseRepo.Delete(ctx, tx, id); err != nil {
			return err
		}
		var err error
		deltas, err = s.applyRefillStock(tx, old, -1)
		return err
	})
	if err != nil {
		return s.fail("delete expense", err)
	}

	s.expenses = removeByID(s.expenses, id, func(v model.Expense) uuid.UUID { return v.ID })
	s.commitStockDeltas(deltas)
	return nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

func (s *Store) CreateInventoryItem(ctx context.Context, item model.InventoryItem) (*model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := runTx(ctx, s.inventoryRepo.DB(), func(tx *gorm.DB) error {
		return s.inventoryRepo.Create(ctx, tx, &item)
	})
	if err != nil {
		// Duplicate (brand,size) rows surface here as a duplicate-key error.
		return nil, s.fail("create inventory item", err)
	}

	s.inventory = append([]model.InventoryItem{item}, s.inventory...)
	return &item, nil
}

func (s *Store) UpdateInventoryItem(ctx context.Context, item model.InventoryItem) (*model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.findInventoryItem(item.ID)
	if old == nil {
		return nil, apierror.NotFound("inventory item not found")
	}
	item.CreatedAt = old.CreatedAt

	err := runTx(ctx, s.inventoryRepo.DB(), func(tx *gorm.DB) error {
		return s.inventoryRepo.Update(ctx, tx, &item)
	})
	if err != nil {
		return nil, s.fail("update inventory item", err)
	}

	s.replaceInventoryItem(item)
	return &item, nil
}

func (s *Store) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findInventoryItem(id) == nil {
		return apierror.NotFound("inventory item not found")
	}

	err := runTx(ctx, s.inventoryRepo.DB(), func(tx *gorm.DB) error {
		return s.inventoryRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return s.fail("delete inventory item", err)
	}

	s.inventory = removeByID(s.inventory, id, func(v model.InventoryItem) uuid.UUID { return v.ID })
	return nil
}

// ── Internals ────────────────────────────────────────────────────────────────

// injectCostSnapshots fills missing per-line cost prices from the matching
// inventory item before submission, so profit survives later cost edits.
func (s *Store) injectCostSnapshots(sale *model.Sale) {
	if len(sale.Items) > 0 {
		for i := range sale.Items {
			if sale.Items[i].CostPrice == nil {
				if cost := s.standardCostLocked(sale.Items[i].Brand, sale.Items[i].Size); cost != nil {
					sale.Items[i].CostPrice = cost
				}
			}
		}
		return
	}
	if sale.CostPrice == nil {
		if cost := s.standardCostLocked(sale.TankBrand, sale.TankSize); cost != nil {
			sale.CostPrice = cost
		}
	}
}

// fail logs a mutation failure and translates it for the caller. Every
// failure is terminal for that action only; the store stays usable.
func (s *Store) fail(op string, err error) *apierror.APIError {
	apiErr := apierror.FromGateway(err)
	log.Error().Str("op", op).Str("code", string(apiErr.Code)).Err(err).Msg("store operation failed")
	return apiErr
}

func (s *Store) findCustomer(id uuid.UUID) *model.Customer {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i]
		}
	}
	return nil
}

func (s *Store) findSale(id uuid.UUID) *model.Sale {
	for i := range s.sales {
		if s.sales[i].ID == id {
			return &s.sales[i]
		}
	}
	return nil
}

func (s *Store) findExpense(id uuid.UUID) *model.Expense {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			return &s.expenses[i]
		}
	}
	return nil
}

func (s *Store) findInventoryItem(id uuid.UUID) *model.InventoryItem {
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			return &s.inventory[i]
		}
	}
	return nil
}

func (s *Store) replaceCustomer(c model.Customer) {
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return
		}
	}
}

func (s *Store) replaceSale(v model.Sale) {
	for i := range s.sales {
		if s.sales[i].ID == v.ID {
			s.sales[i] = v
			return
		}
	}
}

func (s *Store) replaceExpense(e model.Expense) {
	for i := range s.expenses {
		if s.expenses[i].ID == e.ID {
			s.expenses[i] = e
			return
		}
	}
}

func (s *Store) replaceInventoryItem(item model.InventoryItem) {
	for i := range s.inventory {
		if s.inventory[i].ID == item.ID {
			s.inventory[i] = item
			return
		}
	}
}

func removeByID[T any](items []T, id uuid.UUID, idOf func(T) uuid.UUID) []T {
	out := items[:0]
	for _, v := range items {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}
