// controllers/dashboard.go
package controllers

import (
	"net/http"
	"strconv"

	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 50

func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.Store.GetDashboardStats(c.Request.Context(), utils.Today(h.now()))
	if err != nil {
		h.serverError(c, "dashboard stats", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, stats)
}

// GetNotifications lists recent delivery attempts, newest first.
func (h *Handler) GetNotifications(c *gin.Context) {
	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = n
	}

	logs, err := h.Store.GetNotificationLogs(c.Request.Context(), limit)
	if err != nil {
		h.serverError(c, "list notifications", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, logs)
}
