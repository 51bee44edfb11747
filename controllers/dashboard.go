package controllers

import (
	"net/http"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/schedule"
	"poolcare-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// RosterEntry is one customer on today's route with their completion state
// and, when present, last week's reading for quick comparison.
type RosterEntry struct {
	Customer    models.Customer    `json:"customer"`
	Completed   bool               `json:"completed"`
	LastWeekLog *models.ServiceLog `json:"lastWeekLog,omitempty"`
}

// QuickStats summarizes today's route progress
type QuickStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// requestTime resolves the reference instant for route and report views. An
// explicit date query parameter pins it for deterministic output; otherwise
// the server clock is used.
func requestTime(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	t, err := schedule.ParseDate(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// GetTodayRoute returns today's roster with completion flags, last week's
// logs, the missed-service list and quick stats. Everything is recomputed
// from a fresh snapshot on every call; nothing is cached between requests.
func GetTodayRoute(c *gin.Context) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("created_by = ?", identity.(string)).
		Order("created_at ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	// Recent logs, newest first: the same bounded window the route screen
	// reads, wide enough to cover this week and last.
	var logs []models.ServiceLog
	if err := config.DB.Order("service_date DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	roster := schedule.TodayRoster(customers, now)
	completed := schedule.CompletionSet(logs, now)
	lastWeek := schedule.LastWeekLogIndex(logs, now)
	missed := schedule.MissedServices(customers, logs, now)

	entries := make([]RosterEntry, 0, len(roster))
	stats := QuickStats{Total: len(roster)}
	for _, customer := range roster {
		entry := RosterEntry{Customer: customer, Completed: completed[customer.ID]}
		if log, ok := lastWeek[customer.ID]; ok {
			entry.LastWeekLog = &log
		}
		if entry.Completed {
			stats.Completed++
		}
		entries = append(entries, entry)
	}
	stats.Pending = stats.Total - stats.Completed

	if missed == nil {
		missed = []schedule.MissedService{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           utils.DateString(now),
		"dayOfWeek":      now.Weekday().String(),
		"roster":         entries,
		"missedServices": missed,
		"stats":          stats,
	})
}
