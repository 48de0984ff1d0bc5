package handler

import (
	"net/http"

	"github.com/appidartkitthana/GAS-System-management/internal/apierror"
	"github.com/appidartkitthana/GAS-System-management/internal/dto"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ store *store.Store }

func NewInventoryHandler(s *store.Store) *InventoryHandler { return &InventoryHandler{store: s} }

func (h *InventoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Inventory())
}

// Alerts lists items whose full count has reached the alert threshold.
func (h *InventoryHandler) Alerts(c *gin.Context) {
	items := h.store.LowStockItems()
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.InventoryItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if msg := req.Validate(); msg != "" {
		c.JSON(http.StatusBadRequest, apierror.BusinessRule(msg))
		return
	}
	created, err := h.store.CreateInventoryItem(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.InventoryItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if msg := req.Validate(); msg != "" {
		c.JSON(http.StatusBadRequest, apierror.BusinessRule(msg))
		return
	}
	item := req.ToModel()
	item.ID = id
	updated, err := h.store.UpdateInventoryItem(c.Request.Context(), item)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !confirmDelete(c) {
		return
	}
	if err := h.store.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
