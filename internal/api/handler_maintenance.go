package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance-dashboard-backend/internal/model"
)

func (h *Handler) CreateMaintenanceAlert(c *gin.Context) {
	var a model.MaintenanceAlert
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.tenants.AddMaintenanceAlert(a)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type completeMaintenanceRequest struct {
	Technician string `json:"technician" binding:"required"`
}

func (h *Handler) CompleteMaintenance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req completeMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.tenants.CompleteMaintenance(id, req.Technician); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type rescheduleMaintenanceRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *Handler) RescheduleMaintenance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req rescheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.tenants.RescheduleMaintenance(id, req.Date); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteMaintenanceAlert(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.tenants.DeleteMaintenanceAlert(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateScheduledMaintenance(c *gin.Context) {
	var m model.ScheduledMaintenance
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.tenants.AddScheduledMaintenance(m)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) DeleteScheduledMaintenance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.tenants.DeleteScheduledMaintenance(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
