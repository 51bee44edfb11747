package controllers

import (
	"net/http"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/services"
	"poolcare-backend/utils"

	"github.com/gin-gonic/gin"
)

// RunDigest triggers the caller's missed-service digest on demand instead
// of waiting for the morning schedule.
func RunDigest(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}

	digest := services.NewDigestService(config.DB)
	missed, err := digest.SendUserDigest(user, now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to run digest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"missed": missed, "sent": missed > 0})
}
