package handler

import (
	"net/http"

	"github.com/appidartkitthana/GAS-System-management/internal/profile"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{ store *profile.FileStore }

func NewProfileHandler(s *profile.FileStore) *ProfileHandler { return &ProfileHandler{store: s} }

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.store.Load()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Put(c *gin.Context) {
	var req profile.CompanyProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid JSON: " + err.Error()})
		return
	}
	if err := h.store.Save(req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
