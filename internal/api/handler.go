package api

import (
	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"maintenance-dashboard-backend/internal/backend"
	"maintenance-dashboard-backend/internal/calendar"
	"maintenance-dashboard-backend/internal/tenant"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	tenants  *tenant.Store
	calendar *calendar.Aggregator
	backend  *backend.Client
	db       *gorm.DB
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(tenants *tenant.Store, agg *calendar.Aggregator, client *backend.Client, db *gorm.DB, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		tenants:  tenants,
		calendar: agg,
		backend:  client,
		db:       db,
		webpush:  webpushOptions,
	}
}
