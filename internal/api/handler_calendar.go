package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"maintenance-dashboard-backend/internal/calendar"
)

func calendarFilter(c *gin.Context) calendar.Filter {
	var f calendar.Filter
	if v := c.Query("userId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.UserID = id
		}
	}
	f.EventType = c.Query("type")
	return f
}

// GetDayEvents returns the merged events of a single day.
func (h *Handler) GetDayEvents(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	data, err := h.tenants.Dataset()
	if err != nil {
		storeError(c, err)
		return
	}

	events := h.calendar.EventsForDate(data, date, calendarFilter(c))
	c.JSON(http.StatusOK, gin.H{
		"date":   date.Format("2006-01-02"),
		"week":   calendar.WeekNumber(date),
		"events": events,
	})
}

// GetMonthGrid returns the 42-cell month view.
func (h *Handler) GetMonthGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return
	}

	data, err := h.tenants.Dataset()
	if err != nil {
		storeError(c, err)
		return
	}

	cells := h.calendar.MonthGrid(data, year, time.Month(month), calendarFilter(c))
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"cells": cells,
	})
}
