package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maintenance-dashboard-backend/internal/model"
	"maintenance-dashboard-backend/internal/tenant"
)

// idParam parses the :id path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// storeError maps tenant store errors onto HTTP statuses.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tenant.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, tenant.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListEnterprises returns all known enterprises.
func (h *Handler) ListEnterprises(c *gin.Context) {
	list, err := h.tenants.ListEnterprises()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createEnterpriseRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CreateEnterprise registers a new enterprise without switching to it.
func (h *Handler) CreateEnterprise(c *gin.Context) {
	var req createEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.tenants.AddEnterprise(model.Enterprise{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GetCurrentEnterprise returns the active enterprise.
func (h *Handler) GetCurrentEnterprise(c *gin.Context) {
	e, err := h.tenants.CurrentEnterprise()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

type switchEnterpriseRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// SwitchEnterprise changes the active enterprise. The outgoing
// enterprise's dataset is persisted before the switch.
func (h *Handler) SwitchEnterprise(c *gin.Context) {
	var req switchEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tenants.SwitchEnterprise(req.ID); err != nil {
		storeError(c, err)
		return
	}

	e, err := h.tenants.CurrentEnterprise()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// GetDataset returns the full collection set of the current enterprise.
func (h *Handler) GetDataset(c *gin.Context) {
	data, err := h.tenants.Dataset()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// SaveDataset forces a persist of the current enterprise's dataset.
func (h *Handler) SaveDataset(c *gin.Context) {
	if err := h.tenants.SaveCurrentDataset(); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
