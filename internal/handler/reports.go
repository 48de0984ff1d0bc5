package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/appidartkitthana/GAS-System-management/internal/apierror"
	"github.com/appidartkitthana/GAS-System-management/internal/dto"
	"github.com/appidartkitthana/GAS-System-management/internal/export"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ store *store.Store }

func NewReportsHandler(s *store.Store) *ReportsHandler { return &ReportsHandler{store: s} }

// Daily returns the summary for the current report date, or for ?date=
// (YYYY-MM-DD) without changing the stored report date.
func (h *ReportsHandler) Daily(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		c.JSON(http.StatusOK, h.store.DailySummaryFor(date))
		return
	}
	c.JSON(http.StatusOK, h.store.DailySummary())
}

func (h *ReportsHandler) Monthly(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		c.JSON(http.StatusOK, h.store.MonthlySummaryFor(date))
		return
	}
	c.JSON(http.StatusOK, h.store.MonthlySummary())
}

func (h *ReportsHandler) GetDate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"date": h.store.ReportDate().Format("2006-01-02")})
}

func (h *ReportsHandler) SetDate(c *gin.Context) {
	var req dto.ReportDateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid date, expected YYYY-MM-DD"))
		return
	}
	h.store.SetReportDate(date)
	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02")})
}

// ExportMonthly streams the monthly summary as an Excel workbook.
func (h *ReportsHandler) ExportMonthly(c *gin.Context) {
	summary := h.store.MonthlySummary()
	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		summary = h.store.MonthlySummaryFor(date)
	}

	f, err := export.MonthlyWorkbook(summary)
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("monthly-report-%s.xlsx", summary.Month.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing more we can send.
		c.Abort()
	}
}
