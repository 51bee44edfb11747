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

// CreateNoteInput defines the expected JSON structure for creating a note
type CreateNoteInput struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content" binding:"required"`
	Category   string     `json:"category" binding:"required"`
	CustomerID *uuid.UUID `json:"customer_id"`
	Priority   string     `json:"priority" binding:"required"`
}

// UpdateNoteInput defines the expected JSON structure for updating a note
type UpdateNoteInput struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	Category   *string    `json:"category"`
	CustomerID *uuid.UUID `json:"customer_id"`
	Priority   *string    `json:"priority"`
	Completed  *bool      `json:"completed"`
}

// GetNotes lists notes. The order parameter flips to descending only when
// it is exactly "-created_date"; anything else stays ascending.
func GetNotes(c *gin.Context) {
	order := "created_date ASC"
	if c.Query("order") == "-created_date" {
		order = "created_date DESC"
	}

	var notes []models.Note
	if err := config.DB.Order(order).Find(&notes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notes")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// FilterNotes filters by customer_id, else by completed, each hitting its
// index. Category narrows the result afterwards; it has no index.
func FilterNotes(c *gin.Context) {
	query := config.DB.Model(&models.Note{})

	if raw := c.Query("customer_id"); raw != "" {
		customerUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		query = query.Where("customer_id = ?", customerUUID)
	} else if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid completed flag")
			return
		}
		query = query.Where("completed = ?", completed)
	}

	var notes []models.Note
	if err := query.Find(&notes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notes")
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := notes[:0]
		for _, n := range notes {
			if n.Category == category {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}

	c.JSON(http.StatusOK, notes)
}

// GetNotesByCustomer returns a customer's notes, newest first
func GetNotesByCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var notes []models.Note
	if err := config.DB.Where("customer_id = ?", customerUUID).
		Order("created_date DESC").Find(&notes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notes")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote adds a note, open by default, creation date server-assigned
func CreateNote(c *gin.Context) {
	var input CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	note := models.Note{
		ID:          uuid.New(),
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		CustomerID:  input.CustomerID,
		Priority:    input.Priority,
		Completed:   false,
		CreatedDate: utils.DateString(time.Now()),
	}

	if err := config.DB.Create(&note).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, note)
}

// UpdateNote patches the provided fields of an existing note
func UpdateNote(c *gin.Context) {
	noteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid note ID format")
		return
	}

	var input UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var note models.Note
	if err := config.DB.Where("id = ?", noteUUID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Note not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Category != nil {
		note.Category = *input.Category
	}
	if input.CustomerID != nil {
		note.CustomerID = input.CustomerID
	}
	if input.Priority != nil {
		note.Priority = *input.Priority
	}
	if input.Completed != nil {
		note.Completed = *input.Completed
	}

	if err := config.DB.Save(&note).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note
func DeleteNote(c *gin.Context) {
	noteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid note ID format")
		return
	}

	result := config.DB.Where("id = ?", noteUUID).Delete(&models.Note{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Note not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
