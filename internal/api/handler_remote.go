package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance-dashboard-backend/internal/backend"
)

// GetStats proxies the dashboard counters from the external backend.
// Backend failures degrade to zeroed counters so the dashboard keeps
// rendering.
func (h *Handler) GetStats(c *gin.Context) {
	e, err := h.tenants.CurrentEnterprise()
	if err != nil {
		storeError(c, err)
		return
	}

	stats, err := h.backend.Stats(c.Request.Context(), e.ID)
	if err != nil {
		log.Printf("Stats fetch failed for enterprise %d: %v", e.ID, err)
		c.JSON(http.StatusOK, gin.H{"stats": backend.Stats{}, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "degraded": false})
}

// ListRemoteAlerts proxies the verification alerts of the current
// enterprise.
func (h *Handler) ListRemoteAlerts(c *gin.Context) {
	e, err := h.tenants.CurrentEnterprise()
	if err != nil {
		storeError(c, err)
		return
	}

	alerts, err := h.backend.ListAlerts(c.Request.Context(), e.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// CreateRemoteAlert registers a verification alert with the backend,
// pinned to the current enterprise.
func (h *Handler) CreateRemoteAlert(c *gin.Context) {
	var alert backend.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.backend.CreateAlert(c.Request.Context(), alert); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateRemoteAlert replaces a backend alert. The path parameters win
// over whatever ids the body carries.
func (h *Handler) UpdateRemoteAlert(c *gin.Context) {
	var alert backend.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert.EntrepriseID = c.Param("enterpriseId")
	alert.AlerteID = c.Param("alertId")
	if err := h.backend.UpdateAlert(c.Request.Context(), alert); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// VerifyRemoteAlert marks a backend alert's machine as verified.
func (h *Handler) VerifyRemoteAlert(c *gin.Context) {
	if err := h.backend.VerifyAlert(c.Request.Context(), c.Param("enterpriseId"), c.Param("alertId")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRemoteAlert removes a backend alert.
func (h *Handler) DeleteRemoteAlert(c *gin.Context) {
	if err := h.backend.DeleteAlert(c.Request.Context(), c.Param("enterpriseId"), c.Param("alertId")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRemoteUsers proxies the backend's user accounts.
func (h *Handler) ListRemoteUsers(c *gin.Context) {
	users, err := h.backend.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateRemoteUser registers a backend user account.
func (h *Handler) CreateRemoteUser(c *gin.Context) {
	var user backend.RemoteUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.backend.CreateUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// GetRemoteUser proxies one backend user account.
func (h *Handler) GetRemoteUser(c *gin.Context) {
	user, err := h.backend.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateRemoteUser replaces a backend user account. The path id wins
// over the body's.
func (h *Handler) UpdateRemoteUser(c *gin.Context) {
	var user backend.RemoteUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.ID = c.Param("id")
	if err := h.backend.UpdateUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRemoteUser removes a backend user account.
func (h *Handler) DeleteRemoteUser(c *gin.Context) {
	if err := h.backend.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckRemoteRole proxies the backend's role lookup for the caller.
func (h *Handler) CheckRemoteRole(c *gin.Context) {
	check, err := h.backend.CheckRole(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}
