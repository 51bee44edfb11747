package controllers

import (
	"errors"
	"net/http"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceLogInput defines the expected JSON structure for creating a service log
type CreateServiceLogInput struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	ServiceDate string    `json:"service_date" binding:"required"`
	Status      string    `json:"status" binding:"required"`
	Notes       string    `json:"notes"`
	Ph          string    `json:"ph" binding:"required"`
	Chlorine    string    `json:"chlorine" binding:"required"`
	Alkalinity  string    `json:"alkalinity" binding:"required"`
	Stabilizer  string    `json:"stabilizer" binding:"required"`
	Salt        *float64  `json:"salt"`
}

// UpdateServiceLogInput defines the expected JSON structure for updating a service log
type UpdateServiceLogInput struct {
	CustomerID  *uuid.UUID `json:"customer_id"`
	ServiceDate *string    `json:"service_date"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
	Ph          *string    `json:"ph"`
	Chlorine    *string    `json:"chlorine"`
	Alkalinity  *string    `json:"alkalinity"`
	Stabilizer  *string    `json:"stabilizer"`
	Salt        *float64   `json:"salt"`
}

// GetServiceLogs lists logs. The order parameter flips to descending only
// when it is exactly "-service_date"; anything else, including absence,
// stays ascending. Limit defaults to 100.
func GetServiceLogs(c *gin.Context) {
	order := "service_date ASC"
	if c.Query("order") == "-service_date" {
		order = "service_date DESC"
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var logs []models.ServiceLog
	if err := config.DB.Order(order).Limit(limit).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// FilterServiceLogs filters by customer_id or service_date; customer_id
// takes precedence when both are supplied.
func FilterServiceLogs(c *gin.Context) {
	query := config.DB.Model(&models.ServiceLog{})

	if raw := c.Query("customer_id"); raw != "" {
		customerUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		query = query.Where("customer_id = ?", customerUUID)
	} else if date := c.Query("service_date"); date != "" {
		query = query.Where("service_date = ?", date)
	}

	var logs []models.ServiceLog
	if err := query.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetServiceLogsByCustomer returns a customer's logs, newest first
func GetServiceLogsByCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var logs []models.ServiceLog
	if err := config.DB.Where("customer_id = ?", customerUUID).
		Order("service_date DESC").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetServiceLogsByDate returns all logs for one calendar date
func GetServiceLogsByDate(c *gin.Context) {
	var logs []models.ServiceLog
	if err := config.DB.Where("service_date = ?", c.Param("date")).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateServiceLog records a chemical reading for a customer. Readings pass
// through as given; there is no range validation.
func CreateServiceLog(c *gin.Context) {
	var input CreateServiceLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	log := models.ServiceLog{
		ID:          uuid.New(),
		CustomerID:  input.CustomerID,
		ServiceDate: input.ServiceDate,
		Status:      input.Status,
		Notes:       input.Notes,
		Ph:          input.Ph,
		Chlorine:    input.Chlorine,
		Alkalinity:  input.Alkalinity,
		Stabilizer:  input.Stabilizer,
		Salt:        input.Salt,
	}

	if err := config.DB.Create(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service log")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// UpdateServiceLog patches the provided fields of an existing service log
func UpdateServiceLog(c *gin.Context) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service log ID format")
		return
	}

	var input UpdateServiceLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var log models.ServiceLog
	if err := config.DB.Where("id = ?", logUUID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		log.CustomerID = *input.CustomerID
	}
	if input.ServiceDate != nil {
		log.ServiceDate = *input.ServiceDate
	}
	if input.Status != nil {
		log.Status = *input.Status
	}
	if input.Notes != nil {
		log.Notes = *input.Notes
	}
	if input.Ph != nil {
		log.Ph = *input.Ph
	}
	if input.Chlorine != nil {
		log.Chlorine = *input.Chlorine
	}
	if input.Alkalinity != nil {
		log.Alkalinity = *input.Alkalinity
	}
	if input.Stabilizer != nil {
		log.Stabilizer = *input.Stabilizer
	}
	if input.Salt != nil {
		log.Salt = input.Salt
	}

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service log")
		return
	}

	c.JSON(http.StatusOK, log)
}

// DeleteServiceLog removes a service log
func DeleteServiceLog(c *gin.Context) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service log ID format")
		return
	}

	result := config.DB.Where("id = ?", logUUID).Delete(&models.ServiceLog{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service log")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service log deleted successfully"})
}
