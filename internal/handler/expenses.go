package handler

import (
	"net/http"

	"github.com/appidartkitthana/GAS-System-management/internal/apierror"
	"github.com/appidartkitthana/GAS-System-management/internal/document"
	"github.com/appidartkitthana/GAS-System-management/internal/dto"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/gin-gonic/gin"
)

type ExpensesHandler struct{ store *store.Store }

func NewExpensesHandler(s *store.Store) *ExpensesHandler { return &ExpensesHandler{store: s} }

func (h *ExpensesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Expenses())
}

func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.store.CreateExpense(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ExpensesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense := req.ToModel()
	expense.ID = id
	updated, err := h.store.UpdateExpense(c.Request.Context(), expense)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ExpensesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !confirmDelete(c) {
		return
	}
	if err := h.store.DeleteExpense(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Totals returns the printable receipt figures for one expense.
func (h *ExpensesHandler) Totals(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	for _, e := range h.store.Expenses() {
		if e.ID == id {
			c.JSON(http.StatusOK, document.ExpenseTotalsFor(&e))
			return
		}
	}
	c.JSON(http.StatusNotFound, apierror.NotFound("expense not found"))
}
