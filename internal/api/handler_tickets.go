package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance-dashboard-backend/internal/model"
)

func (h *Handler) CreateTicket(c *gin.Context) {
	var t model.Ticket
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.tenants.AddTicket(t)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type ticketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateTicketStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ticketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.tenants.UpdateTicketStatus(id, req.Status); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ticketCommentRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func (h *Handler) AddTicketComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ticketCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.tenants.AddTicketComment(id, req.Author, req.Text); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) DeleteTicket(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.tenants.DeleteTicket(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
