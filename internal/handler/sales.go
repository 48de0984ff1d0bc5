package handler

import (
	"net/http"

	"github.com/appidartkitthana/GAS-System-management/internal/apierror"
	"github.com/appidartkitthana/GAS-System-management/internal/document"
	"github.com/appidartkitthana/GAS-System-management/internal/dto"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct{ store *store.Store }

func NewSalesHandler(s *store.Store) *SalesHandler { return &SalesHandler{store: s} }

func (h *SalesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Sales())
}

func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.SaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale := req.ToModel()
	sale.CustomerID, _ = uuid.Parse(req.CustomerID)

	created, err := h.store.CreateSale(c.Request.Context(), sale)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SalesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale := req.ToModel()
	sale.ID = id
	sale.CustomerID, _ = uuid.Parse(req.CustomerID)

	updated, err := h.store.UpdateSale(c.Request.Context(), sale)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !confirmDelete(c) {
		return
	}
	if err := h.store.DeleteSale(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Totals returns the printable document figures for one sale, including VAT
// when the sale is a tax invoice.
func (h *SalesHandler) Totals(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	for _, sale := range h.store.Sales() {
		if sale.ID == id {
			c.JSON(http.StatusOK, document.SaleTotalsFor(&sale))
			return
		}
	}
	c.JSON(http.StatusNotFound, apierror.NotFound("sale not found"))
}
