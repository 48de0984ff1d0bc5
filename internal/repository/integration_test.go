//go:build integration

package repository_test

// Integration tests against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/repository/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/infra"
	"github.com/appidartkitthana/GAS-System-management/internal/model"
	"github.com/appidartkitthana/GAS-System-management/internal/repository"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("gaspos_test"),
		tcPostgres.WithUsername("gaspos"),
		tcPostgres.WithPassword("gaspos"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(pgURL)
	require.NoError(t, err)
	return db
}

func brandPtr(b model.Brand) *model.Brand      { return &b }
func sizePtr(s model.TankSize) *model.TankSize { return &s }
func timeNow() time.Time                       { return time.Now() }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newStore(db *gorm.DB) *store.Store {
	return store.New(
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewInventoryRepository(db),
	)
}

func TestSaleWriteAndStockDeltaShareOneTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	st := newStore(db)
	require.NoError(t, st.Load(ctx))

	item, err := st.CreateInventoryItem(ctx, model.InventoryItem{
		Category:  model.CategoryGas,
		TankBrand: brandPtr(model.BrandPTT),
		TankSize:  sizePtr(model.Size48),
		Total:     10, Full: 8,
		CostPrice: decPtr("350"),
	})
	require.NoError(t, err)

	customer, err := st.CreateCustomer(ctx, model.Customer{Name: "Shop A"})
	require.NoError(t, err)

	sale, err := st.CreateSale(ctx, model.Sale{
		CustomerID:    customer.ID,
		Date:          timeNow(),
		TankBrand:     model.BrandPTT,
		TankSize:      model.Size48,
		Quantity:      2,
		UnitPrice:     decimal.RequireFromString("550"),
		TotalAmount:   decimal.RequireFromString("1100"),
		PaymentMethod: model.PayCash,
		InvoiceType:   model.InvoiceCashReceipt,
	})
	require.NoError(t, err)
	require.NotNil(t, sale.CostPrice)

	// A second store instance sees the committed row and counter together.
	st2 := newStore(db)
	require.NoError(t, st2.Load(ctx))
	require.Len(t, st2.Sales(), 1)
	var persisted model.InventoryItem
	require.NoError(t, db.First(&persisted, "id = ?", item.ID).Error)
	assert.Equal(t, 6, persisted.Full)
}

func TestOnLoanClampIsEnforcedByTheDatabase(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	st := newStore(db)
	require.NoError(t, st.Load(ctx))

	item, err := st.CreateInventoryItem(ctx, model.InventoryItem{
		Category:  model.CategoryGas,
		TankBrand: brandPtr(model.BrandWP),
		TankSize:  sizePtr(model.Size15),
		Total:     10, Full: 5, OnLoan: 2,
		CostPrice: decPtr("120"),
	})
	require.NoError(t, err)

	customer, err := st.CreateCustomer(ctx, model.Customer{
		Name: "Over-borrowed",
		BorrowedTanks: datatypes.JSONSlice[model.BorrowedTank]{
			{Brand: model.BrandWP, Size: model.Size15, Quantity: 5},
		},
	})
	require.NoError(t, err)

	require.NoError(t, st.DeleteCustomer(ctx, customer.ID))

	var persisted model.InventoryItem
	require.NoError(t, db.First(&persisted, "id = ?", item.ID).Error)
	assert.Equal(t, 0, persisted.OnLoan, "GREATEST clamp keeps the counter at zero")
}

func TestDuplicateGasTankIsRejected(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	st := newStore(db)
	require.NoError(t, st.Load(ctx))

	tank := model.InventoryItem{
		Category:  model.CategoryGas,
		TankBrand: brandPtr(model.BrandPTT),
		TankSize:  sizePtr(model.Size48),
		Total:     10,
	}
	_, err := st.CreateInventoryItem(ctx, tank)
	require.NoError(t, err)

	_, err = st.CreateInventoryItem(ctx, tank)
	require.Error(t, err, "unique (brand,size) index rejects the second row")
}
