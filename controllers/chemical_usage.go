package controllers

import (
	"errors"
	"net/http"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateChemicalUsageInput defines the expected JSON structure for creating a usage record
type CreateChemicalUsageInput struct {
	CustomerID   uuid.UUID `json:"customer_id" binding:"required"`
	ChemicalType string    `json:"chemical_type" binding:"required"`
	Quantity     string    `json:"quantity" binding:"required"`
	Notes        string    `json:"notes"`
}

// UpdateChemicalUsageInput defines the expected JSON structure for updating a usage record
type UpdateChemicalUsageInput struct {
	CustomerID   *uuid.UUID `json:"customer_id"`
	ChemicalType *string    `json:"chemical_type"`
	Quantity     *string    `json:"quantity"`
	Notes        *string    `json:"notes"`
}

// GetChemicalUsage lists usage records. The order parameter flips to
// descending only when it is exactly "-created_date"; anything else stays
// ascending. Limit defaults to 100.
func GetChemicalUsage(c *gin.Context) {
	order := "created_date ASC"
	if c.Query("order") == "-created_date" {
		order = "created_date DESC"
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var records []models.ChemicalUsage
	if err := config.DB.Order(order).Limit(limit).Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve chemical usage")
		return
	}

	c.JSON(http.StatusOK, records)
}

// FilterChemicalUsage filters usage records by customer when requested
func FilterChemicalUsage(c *gin.Context) {
	query := config.DB.Model(&models.ChemicalUsage{})

	if raw := c.Query("customer_id"); raw != "" {
		customerUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		query = query.Where("customer_id = ?", customerUUID)
	}

	var records []models.ChemicalUsage
	if err := query.Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve chemical usage")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetChemicalUsageByCustomer returns a customer's usage records, newest first
func GetChemicalUsageByCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var records []models.ChemicalUsage
	if err := config.DB.Where("customer_id = ?", customerUUID).
		Order("created_date DESC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve chemical usage")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetChemicalTypes returns the pick list for usage entry forms
func GetChemicalTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": models.ChemicalTypes})
}

// CreateChemicalUsage records a consumable entry. The creation date is
// server-assigned as today, never taken from the caller.
func CreateChemicalUsage(c *gin.Context) {
	var input CreateChemicalUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record := models.ChemicalUsage{
		ID:           uuid.New(),
		CustomerID:   input.CustomerID,
		ChemicalType: input.ChemicalType,
		Quantity:     input.Quantity,
		Notes:        input.Notes,
		CreatedDate:  utils.DateString(time.Now()),
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create chemical usage record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateChemicalUsage patches the provided fields of a usage record
func UpdateChemicalUsage(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var input UpdateChemicalUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var record models.ChemicalUsage
	if err := config.DB.Where("id = ?", recordUUID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Chemical usage record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		record.CustomerID = *input.CustomerID
	}
	if input.ChemicalType != nil {
		record.ChemicalType = *input.ChemicalType
	}
	if input.Quantity != nil {
		record.Quantity = *input.Quantity
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update chemical usage record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteChemicalUsage removes a usage record
func DeleteChemicalUsage(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	result := config.DB.Where("id = ?", recordUUID).Delete(&models.ChemicalUsage{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete chemical usage record")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Chemical usage record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chemical usage record deleted successfully"})
}
