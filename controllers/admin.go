// controllers/admin.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weatherbot-backend/services"
	"weatherbot-backend/store"
	"weatherbot-backend/utils"
)

// AdminController exposes read access to users, events and delivery logs,
// plus a manual trigger for one user's daily check.
type AdminController struct {
	Store  store.Store
	Runner *services.Runner
}

func (a *AdminController) GetUsers(c *gin.Context) {
	users, err := a.Store.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (a *AdminController) GetUserEvents(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	events, err := a.Store.ListEvents(c.Request.Context(), userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

func (a *AdminController) GetLogs(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	logs, err := a.Store.ListLogs(c.Request.Context(), limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}

// RunCheck runs the daily check for one user right now. It shares the exact
// code path with the scheduled trigger and the bot's /checktoday command.
func (a *AdminController) RunCheck(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := a.Runner.RunDailyCheck(c.Request.Context(), userID); err != nil {
		if errors.Is(err, services.ErrWeatherKeyMissing) {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Weather API key is not configured")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Check failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check completed"})
}
