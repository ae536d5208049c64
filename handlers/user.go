package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PaynestHQ/paynest-mobile/middleware"
	"github.com/PaynestHQ/paynest-mobile/models"
	"github.com/PaynestHQ/paynest-mobile/store"
	"github.com/PaynestHQ/paynest-mobile/utils"
)

type UserHandler struct {
	Store store.UserStore
}

// ============================================================================
// PROFILE
// ============================================================================

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"code":    models.CodeUnauthorized,
			"message": "Unauthorized",
		})
		return
	}

	user, err := h.Store.GetUserByID(c.Request.Context(), userID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"code":    models.CodeNotFound,
			"message": "User not found",
		})
		return
	}
	if err != nil {
		utils.SafeError("GetProfile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"code":    models.CodeServer,
			"message": "Failed to fetch profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		Success: true,
		User:    user,
	})
}
