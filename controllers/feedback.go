// controllers/feedback.go
package controllers

import (
	"net/http"
	"strings"

	"pawcare-backend/models"
	"pawcare-backend/services"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateFeedbackInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Rating   *int   `json:"rating" binding:"required"`
	Category string `json:"category" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Public   bool   `json:"public"`
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	var input CreateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}
	if *input.Rating < 1 || *input.Rating > 5 {
		utils.RespondWithError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	fb := models.Feedback{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Rating:   *input.Rating,
		Category: strings.TrimSpace(input.Category),
		Message:  strings.TrimSpace(input.Message),
		Public:   input.Public,
	}
	if _, err := h.Store.CreateFeedback(c.Request.Context(), &fb); err != nil {
		h.serverError(c, "create feedback", err)
		return
	}

	utils.RespondWithMessage(c, http.StatusCreated, "Feedback submitted successfully", gin.H{"id": fb.ID})

	if h.Operator != "" {
		h.Dispatcher.Dispatch(services.Notification{
			Kind:     services.KindNewFeedback,
			To:       h.Operator,
			Operator: true,
			Feedback: &fb,
		})
	}
}

func (h *Handler) GetFeedback(c *gin.Context) {
	feedback, err := h.Store.GetAllFeedback(c.Request.Context())
	if err != nil {
		h.serverError(c, "list feedback", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, feedback)
}

func (h *Handler) GetPublicFeedback(c *gin.Context) {
	feedback, err := h.Store.GetPublicFeedback(c.Request.Context())
	if err != nil {
		h.serverError(c, "list public feedback", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, feedback)
}
