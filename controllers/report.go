// controllers/report.go
package controllers

import (
	"net/http"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/schedule"
	"poolcare-backend/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

func offsetParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return n, true
}

// GetWeeklyReport returns the Monday..Friday service table for the week
// selected by week_offset (0 = current week, negative = past weeks).
func (rc *ReportController) GetWeeklyReport(c *gin.Context) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}
	offset, ok := offsetParam(c, "week_offset")
	if !ok {
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("created_by = ?", identity.(string)).
		Order("created_at ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	var logs []models.ServiceLog
	if err := config.DB.Order("service_date DESC").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	week := schedule.WeekWindow(now, offset)
	c.JSON(http.StatusOK, schedule.BuildWeeklyReport(customers, logs, week))
}

// GetMonthlyChemicalReport returns the per-customer chemical usage table
// for the month selected by month_offset.
func (rc *ReportController) GetMonthlyChemicalReport(c *gin.Context) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}
	offset, ok := offsetParam(c, "month_offset")
	if !ok {
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("created_by = ?", identity.(string)).
		Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	var records []models.ChemicalUsage
	if err := config.DB.Order("created_date DESC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve chemical usage")
		return
	}

	month := schedule.MonthWindow(now, offset)
	c.JSON(http.StatusOK, schedule.BuildMonthlyChemicalReport(customers, records, month))
}

// GetHistory returns the trailing month's service logs grouped by customer;
// customers without a log in the window are dropped.
func (rc *ReportController) GetHistory(c *gin.Context) {
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

	var logs []models.ServiceLog
	if err := config.DB.Order("service_date DESC").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	groups := schedule.HistoryGroups(customers, logs, now)
	if groups == nil {
		groups = []schedule.CustomerHistory{}
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
