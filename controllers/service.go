// controllers/service.go
package controllers

import (
	"net/http"
	"strings"

	"pawcare-backend/models"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
}

func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.Store.GetAllServices(c.Request.Context())
	if err != nil {
		h.serverError(c, "list services", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, services)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	service, err := h.Store.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "get service", err)
		return
	}
	if service == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	utils.RespondWithData(c, http.StatusOK, service)
}

func (h *Handler) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	service := models.Service{
		Name:            strings.TrimSpace(input.Name),
		Description:     strings.TrimSpace(input.Description),
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	}
	if _, err := h.Store.CreateService(c.Request.Context(), &service); err != nil {
		h.storeError(c, "create service", err, "Service already exists")
		return
	}
	utils.RespondWithMessage(c, http.StatusCreated, "Service created successfully", service)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	update := models.ServiceUpdate{
		Name:            trimmedOrNil(input.Name),
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	}
	if update.Name == nil && update.Description == nil && update.Price == nil && update.DurationMinutes == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx := c.Request.Context()
	changed, err := h.Store.UpdateService(ctx, id, update)
	if err != nil {
		h.storeError(c, "update service", err, "Service already exists")
		return
	}
	if !changed {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	service, err := h.Store.GetServiceByID(ctx, id)
	if err != nil || service == nil {
		h.serverError(c, "reload service", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Service updated successfully", service)
}
