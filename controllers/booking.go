// controllers/booking.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawcare-backend/logger"
	"pawcare-backend/models"
	"pawcare-backend/services"
	"pawcare-backend/store"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

const defaultPetType = "Not specified"

// serviceKeys maps the booking form's service values to catalogue names.
var serviceKeys = map[string]string{
	"pet-sitting":  "Pet Sitting",
	"dog-walking":  "Dog Walking",
	"pet-boarding": "Pet Boarding",
	"grooming":     "Grooming",
	"vet-visits":   "Vet Visits",
	"training":     "Training Support",
}

var errNoServices = errors.New("service catalogue is empty")

// CreateBookingInput is the public booking form. Every field is optional at
// the binding level; required ones are checked by hand so the client gets a
// single message naming all of them.
type CreateBookingInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Service     string          `json:"service"`
	PetName     string          `json:"petName"`
	PetType     string          `json:"petType"`
	PetAge      json.RawMessage `json:"petAge"`
	Message     string          `json:"message"`
	BookingDate string          `json:"bookingDate"`
	BookingTime string          `json:"bookingTime"`
}

type UpdateBookingInput struct {
	Status string `json:"status"`
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)
	serviceKey := strings.TrimSpace(input.Service)
	if name == "" || email == "" || phone == "" || serviceKey == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: name, email, phone, service")
		return
	}

	date, clock, err := h.bookingSlot(input.BookingDate, input.BookingTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var notes *string
	if msg := strings.TrimSpace(input.Message); msg != "" {
		notes = &msg
	}

	ctx := c.Request.Context()
	var bookingID uint
	err = h.Store.Transaction(ctx, func(tx store.Store) error {
		customerID, err := findOrCreateCustomer(ctx, tx, name, email, phone)
		if err != nil {
			return err
		}

		var petID *uint
		if petName := strings.TrimSpace(input.PetName); petName != "" {
			petType := strings.TrimSpace(input.PetType)
			if petType == "" {
				petType = defaultPetType
			}
			id, err := tx.CreatePet(ctx, &models.Pet{
				CustomerID:   customerID,
				Name:         petName,
				Type:         petType,
				Age:          parseAge(input.PetAge),
				SpecialNeeds: notes,
			})
			if err != nil {
				return err
			}
			petID = &id
		}

		service, err := h.resolveService(ctx, tx, serviceKey)
		if err != nil {
			return err
		}

		bookingID, err = tx.CreateBooking(ctx, &models.Booking{
			CustomerID:  customerID,
			PetID:       petID,
			ServiceID:   service.ID,
			BookingDate: date,
			BookingTime: clock,
			Status:      models.StatusPending,
			Notes:       notes,
		})
		return err
	})
	if err != nil {
		h.storeError(c, "create booking", err, "Customer email already in use")
		return
	}

	booking, err := h.Store.GetBookingByID(ctx, bookingID)
	if err != nil || booking == nil {
		h.serverError(c, "reload booking", err)
		return
	}

	h.Log.Info("booking created", logger.Fields{"booking_id": booking.ID, "service": booking.ServiceName})
	utils.RespondWithMessage(c, http.StatusCreated, "Booking created successfully", booking)

	h.Dispatcher.Dispatch(services.Notification{
		Kind:    services.KindBookingReceived,
		To:      booking.CustomerEmail,
		Booking: booking,
	})
	if h.Operator != "" {
		h.Dispatcher.Dispatch(services.Notification{
			Kind:     services.KindBookingReceived,
			To:       h.Operator,
			Operator: true,
			Booking:  booking,
		})
	}
}

// bookingSlot validates a requested date and time. When either is missing
// the booking defaults to tomorrow at 10:00.
func (h *Handler) bookingSlot(date, clock string) (string, string, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return utils.Tomorrow(h.now()), utils.DefaultBookingTime, nil
	}

	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return "", "", errors.New("Invalid booking date, expected YYYY-MM-DD")
	}
	clock = utils.NormalizeTime(clock)
	if _, err := time.Parse("15:04:05", clock); err != nil {
		return "", "", errors.New("Invalid booking time, expected HH:MM")
	}
	return date, clock, nil
}

func findOrCreateCustomer(ctx context.Context, tx store.Store, name, email, phone string) (uint, error) {
	customer, err := tx.GetCustomerByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if customer != nil {
		return customer.ID, nil
	}
	return tx.CreateCustomer(ctx, name, email, phone)
}

// resolveService matches a form key, a catalogue name (any case) or a numeric
// id. Unknown values fall back to the first service in the catalogue.
func (h *Handler) resolveService(ctx context.Context, tx store.Store, key string) (*models.Service, error) {
	catalogue, err := tx.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogue) == 0 {
		return nil, errNoServices
	}

	name := key
	if mapped, ok := serviceKeys[strings.ToLower(key)]; ok {
		name = mapped
	}
	for i := range catalogue {
		if strings.EqualFold(catalogue[i].Name, name) {
			return &catalogue[i], nil
		}
	}
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		for i := range catalogue {
			if catalogue[i].ID == uint(id) {
				return &catalogue[i], nil
			}
		}
	}

	h.Log.Warn("unknown service requested, using first service", logger.Fields{
		"requested": key,
		"fallback":  catalogue[0].Name,
	})
	return &catalogue[0], nil
}

// parseAge reads a JSON number or a string with a leading integer. Anything
// else means no age.
func parseAge(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	var age int
	switch t := v.(type) {
	case float64:
		age = int(t)
	case string:
		s := strings.TrimSpace(t)
		end := 0
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		n, err := strconv.Atoi(s[:end])
		if err != nil {
			return nil
		}
		age = n
	default:
		return nil
	}
	if age < 0 {
		return nil
	}
	return &age
}

func (h *Handler) GetBookings(c *gin.Context) {
	bookings, err := h.Store.GetAllBookings(c.Request.Context())
	if err != nil {
		h.serverError(c, "list bookings", err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.Store.GetBookingByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "get booking", err)
		return
	}
	if booking == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithData(c, http.StatusOK, booking)
}

// UpdateBookingStatus changes the status only. Customers hear about
// confirmed, completed and cancelled bookings.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Status == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}
	status := models.BookingStatus(input.Status)
	if !status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status. Must be: pending, confirmed, completed, or cancelled")
		return
	}

	ctx := c.Request.Context()
	n, err := h.Store.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		h.serverError(c, "update booking status", err)
		return
	}
	if n == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := h.Store.GetBookingByID(ctx, id)
	if err != nil || booking == nil {
		h.serverError(c, "reload booking", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Booking updated successfully", booking)

	if status.Notifies() {
		h.Dispatcher.Dispatch(services.Notification{
			Kind:    services.KindBookingStatus,
			To:      booking.CustomerEmail,
			Phone:   booking.CustomerPhone,
			Booking: booking,
		})
	}
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.Store.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "delete booking", err)
		return
	}
	if n == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Booking deleted successfully", nil)
}
