// controllers/customer.go
package controllers

import (
	"net/http"

	"pawcare-backend/session"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCustomers lists every customer with its portal registration status.
func (h *Handler) GetCustomers(c *gin.Context) {
	customers, err := h.Store.GetAllCustomers(c.Request.Context())
	if err != nil {
		h.serverError(c, "list customers", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, customers)
}

func (h *Handler) GetCustomerBookings(c *gin.Context) {
	customerID := session.Current(c).Data.CustomerID
	bookings, err := h.Store.GetBookingsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.serverError(c, "list customer bookings", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, bookings)
}

func (h *Handler) GetCustomerPets(c *gin.Context) {
	customerID := session.Current(c).Data.CustomerID
	pets, err := h.Store.GetPetsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.serverError(c, "list customer pets", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, pets)
}
