package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"maintenance-dashboard-backend/config"
	"maintenance-dashboard-backend/internal/backend"
	"maintenance-dashboard-backend/internal/calendar"
	"maintenance-dashboard-backend/internal/mw"
	"maintenance-dashboard-backend/internal/tenant"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, tenants *tenant.Store, agg *calendar.Aggregator, client *backend.Client, db *gorm.DB, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(tenants, agg, client, db, webpushOptions)

	limit := cfg.RateLimitPerSec
	if limit <= 0 {
		limit = 10
	}
	burst := int(limit)
	if burst < 5 {
		burst = 5
	}
	rateLimiter := mw.RateLimiter(rate.Limit(limit), burst, cfg.RequestIPHeader)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl, "/api/stats")

	api := r.Group("/api")
	api.Use(mw.RequestID(), rateLimiter)
	{
		// Enterprises
		api.GET("/enterprises", handler.ListEnterprises)
		api.POST("/enterprises", handler.CreateEnterprise)
		api.GET("/enterprises/current", handler.GetCurrentEnterprise)
		api.PUT("/enterprises/current", handler.SwitchEnterprise)

		// Enterprise-scoped collections
		api.GET("/dataset", handler.GetDataset)
		api.POST("/dataset/save", handler.SaveDataset)

		api.POST("/machines", handler.CreateMachine)
		api.PUT("/machines/:id", handler.UpdateMachine)
		api.DELETE("/machines/:id", handler.DeleteMachine)

		api.POST("/categories", handler.CreateCategory)
		api.PUT("/categories/:id", handler.UpdateCategory)
		api.DELETE("/categories/:id", handler.DeleteCategory)

		api.POST("/subcategories", handler.CreateSubCategory)
		api.PUT("/subcategories/:id", handler.UpdateSubCategory)
		api.DELETE("/subcategories/:id", handler.DeleteSubCategory)

		api.POST("/technicians", handler.CreateTechnician)
		api.PUT("/technicians/:id", handler.UpdateTechnician)
		api.DELETE("/technicians/:id", handler.DeleteTechnician)

		api.POST("/inventory", handler.CreateInventoryItem)
		api.PUT("/inventory/:id", handler.UpdateInventoryItem)
		api.DELETE("/inventory/:id", handler.DeleteInventoryItem)

		api.POST("/users", handler.CreateUser)
		api.PUT("/users/:id", handler.UpdateUser)
		api.DELETE("/users/:id", handler.DeleteUser)

		api.POST("/schedule", handler.CreateScheduleEntry)
		api.DELETE("/schedule/:id", handler.DeleteScheduleEntry)

		// Repairs
		api.POST("/repairs", handler.CreateRepair)
		api.PUT("/repairs/:id", handler.UpdateRepair)
		api.POST("/repairs/:id/start", handler.StartRepair)
		api.POST("/repairs/:id/complete", handler.CompleteRepair)
		api.POST("/repairs/:id/cancel", handler.CancelRepair)
		api.GET("/repairs/history", handler.GetRepairHistory)

		// Tickets
		api.POST("/tickets", handler.CreateTicket)
		api.PATCH("/tickets/:id/status", handler.UpdateTicketStatus)
		api.POST("/tickets/:id/comments", handler.AddTicketComment)
		api.DELETE("/tickets/:id", handler.DeleteTicket)

		// Maintenance
		api.POST("/maintenance", handler.CreateMaintenanceAlert)
		api.POST("/maintenance/:id/complete", handler.CompleteMaintenance)
		api.PATCH("/maintenance/:id/reschedule", handler.RescheduleMaintenance)
		api.DELETE("/maintenance/:id", handler.DeleteMaintenanceAlert)
		api.POST("/maintenance/scheduled", handler.CreateScheduledMaintenance)
		api.DELETE("/maintenance/scheduled/:id", handler.DeleteScheduledMaintenance)

		// Calendar
		api.GET("/calendar/day", handler.GetDayEvents)
		api.GET("/calendar/month", handler.GetMonthGrid)

		// External backend proxies
		api.GET("/stats", caching, handler.GetStats)
		api.GET("/alerts", handler.ListRemoteAlerts)
		api.POST("/alerts", handler.CreateRemoteAlert)
		api.PUT("/alerts/:enterpriseId/:alertId", handler.UpdateRemoteAlert)
		api.POST("/alerts/:enterpriseId/:alertId/verify", handler.VerifyRemoteAlert)
		api.POST("/alerts/:enterpriseId/:alertId/delete", handler.DeleteRemoteAlert)

		api.GET("/remote-users", handler.ListRemoteUsers)
		api.POST("/remote-users", handler.CreateRemoteUser)
		api.GET("/remote-users/check-role", handler.CheckRemoteRole)
		api.GET("/remote-users/:id", handler.GetRemoteUser)
		api.PUT("/remote-users/:id", handler.UpdateRemoteUser)
		api.DELETE("/remote-users/:id", handler.DeleteRemoteUser)

		// Push subscriptions
		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
