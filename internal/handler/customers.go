package handler

import (
	"net/http"

	"github.com/appidartkitthana/GAS-System-management/internal/dto"
	"github.com/appidartkitthana/GAS-System-management/internal/store"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct{ store *store.Store }

func NewCustomersHandler(s *store.Store) *CustomersHandler { return &CustomersHandler{store: s} }

func (h *CustomersHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Customers())
}

func (h *CustomersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, ok := h.store.CustomerByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.store.CreateCustomer(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	customer := req.ToModel()
	customer.ID = id
	updated, err := h.store.UpdateCustomer(c.Request.Context(), customer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !confirmDelete(c) {
		return
	}
	if err := h.store.DeleteCustomer(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
