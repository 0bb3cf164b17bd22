// controllers/handler.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawcare-backend/logger"
	"pawcare-backend/services"
	"pawcare-backend/session"
	"pawcare-backend/store"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

// Handler holds the collaborators shared by every endpoint.
type Handler struct {
	Store      store.Store
	Sessions   *session.Manager
	Dispatcher *services.Dispatcher
	Exporter   services.Exporter
	Operator   string // business address for booking and feedback alerts
	Log        logger.Logger

	now func() time.Time
}

func NewHandler(st store.Store, sessions *session.Manager, dispatcher *services.Dispatcher, exporter services.Exporter, operator string, log logger.Logger) *Handler {
	return &Handler{
		Store:      st,
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Exporter:   exporter,
		Operator:   operator,
		Log:        log,
		now:        time.Now,
	}
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "PawCare API is running"})
}

// serverError logs the cause and answers with a generic 500.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, logger.Fields{
		"error":  err,
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
	utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
}

// storeError maps a failed write: unique violations become 400 with
// conflictMsg, anything else is a 500.
func (h *Handler) storeError(c *gin.Context, msg string, err error, conflictMsg string) {
	if errors.Is(err, store.ErrConflict) {
		utils.RespondWithError(c, http.StatusBadRequest, conflictMsg)
		return
	}
	h.serverError(c, msg, err)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// trimmedOrNil drops absent and blank values so partial updates keep the
// stored field.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
