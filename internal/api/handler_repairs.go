package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance-dashboard-backend/internal/model"
)

func (h *Handler) CreateRepair(c *gin.Context) {
	var r model.Repair
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.tenants.AddRepair(r)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateRepair(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var r model.Repair
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.ID = id
	if err := h.tenants.UpdateRepair(r); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) StartRepair(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.tenants.StartRepair(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type completeRepairRequest struct {
	ActualCost     float64 `json:"actualCost"`
	ActualDuration float64 `json:"actualDuration"`
	Notes          string  `json:"notes"`
}

func (h *Handler) CompleteRepair(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req completeRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.tenants.CompleteRepair(id, req.ActualCost, req.ActualDuration, req.Notes); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CancelRepair(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.tenants.CancelRepair(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRepairHistory returns the repairs completed during this session.
func (h *Handler) GetRepairHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.tenants.RepairHistory())
}
