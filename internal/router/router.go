package router

import (
	"github.com/appidartkitthana/GAS-System-management/internal/config"
	"github.com/appidartkitthana/GAS-System-management/internal/handler"
	"github.com/appidartkitthana/GAS-System-management/internal/middleware"
	"github.com/appidartkitthana/GAS-System-management/internal/profile"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Store ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, st *store.Store, profileStore *profile.FileStore) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler())

	customersH := handler.NewCustomersHandler(st)
	salesH := handler.NewSalesHandler(st)
	expensesH := handler.NewExpensesHandler(st)
	inventoryH := handler.NewInventoryHandler(st)
	reportsH := handler.NewReportsHandler(st)
	profileH := handler.NewProfileHandler(profileStore)

	r.GET("/health", handler.Health(db, st))

	v1 := r.Group("/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.POST("", customersH.Create)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("", salesH.List)
			sales.POST("", salesH.Create)
			sales.PUT("/:id", salesH.Update)
			sales.DELETE("/:id", salesH.Delete)
			sales.GET("/:id/totals", salesH.Totals)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expensesH.List)
			expenses.POST("", expensesH.Create)
			expenses.PUT("/:id", expensesH.Update)
			expenses.DELETE("/:id", expensesH.Delete)
			expenses.GET("/:id/totals", expensesH.Totals)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryH.List)
			inventory.GET("/alerts", inventoryH.Alerts)
			inventory.POST("", inventoryH.Create)
			inventory.PUT("/:id", inventoryH.Update)
			inventory.DELETE("/:id", inventoryH.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/daily", reportsH.Daily)
			reports.GET("/monthly", reportsH.Monthly)
			reports.GET("/date", reportsH.GetDate)
			reports.PUT("/date", reportsH.SetDate)
			reports.GET("/monthly/export", reportsH.ExportMonthly)
		}

		v1.GET("/profile", profileH.Get)
		v1.PUT("/profile", profileH.Put)
	}

	return r
}
