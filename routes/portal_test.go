package routes

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"pawcare-backend/models"
	"pawcare-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(e *testEnv, email, password string) response {
	return e.do(http.MethodPost, "/api/customer/register", map[string]any{
		"name":     "Ana Lima",
		"email":    email,
		"phone":    "+91 98765 43210",
		"password": password,
	}, nil)
}

func TestCustomerRegister_PasswordPolicy(t *testing.T) {
	e := newTestEnv(t)

	res := register(e, "ana@x.com", "short1")
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Password must be at least 8 characters long", res.env.Error)

	res = register(e, "ana@x.com", "nouppercase1!")
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Password must contain at least one uppercase letter", res.env.Error)

	res = register(e, "ana@x.com", "Str0ng!Pass")
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	assert.True(t, res.env.Success)

	res = register(e, "ANA@x.com", "Str0ng!Pass")
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Email already registered", res.env.Error)
}

func TestCustomerRegister_OverlongPassword(t *testing.T) {
	e := newTestEnv(t)

	res := register(e, "ana@x.com", "Str0ng!Pass"+strings.Repeat("x", 70))
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Password must be at most 72 bytes long", res.env.Error)
}

func TestRememberedAdminSurvivesCustomerLogin(t *testing.T) {
	e := newTestEnv(t)
	require.Equal(t, http.StatusCreated, register(e, "ana@x.com", "Str0ng!Pass").Code)

	res := e.do(http.MethodPost, "/api/auth/login", map[string]any{"username": adminUser, "password": adminPassword, "remember": true}, nil)
	require.Equal(t, http.StatusOK, res.Code)
	admin := res.cookie(t)
	assert.Equal(t, 24*60*60, admin.MaxAge)

	res = e.do(http.MethodPost, "/api/customer/login", map[string]any{"email": "ana@x.com", "password": "Str0ng!Pass"}, admin)
	require.Equal(t, http.StatusOK, res.Code)
	both := res.cookie(t)
	assert.Equal(t, 24*60*60, both.MaxAge)

	res = e.do(http.MethodGet, "/api/auth/check", nil, both)
	assert.Contains(t, res.Body.String(), `"authenticated":true`)
	res = e.do(http.MethodGet, "/api/customer/check", nil, both)
	assert.Contains(t, res.Body.String(), `"authenticated":true`)
}

func TestCustomerRegister_InvalidInput(t *testing.T) {
	e := newTestEnv(t)

	res := e.do(http.MethodPost, "/api/customer/register", map[string]any{
		"name": "Ana", "email": "not-an-email", "phone": "9999999999", "password": "Str0ng!Pass",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = e.do(http.MethodPost, "/api/customer/register", map[string]any{
		"name": "Ana", "email": "ana@x.com", "phone": "12-34", "password": "Str0ng!Pass",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCustomerRegister_AdoptsBookingCustomer(t *testing.T) {
	e := newTestEnv(t)
	b := e.createBooking(map[string]any{"name": "Ana", "email": "ana@x.com", "phone": "9999999999", "service": "grooming"})

	res := register(e, "ana@x.com", "Str0ng!Pass")
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	cookie := res.cookie(t)

	res = e.do(http.MethodGet, "/api/customer/bookings", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)
	var bookings []models.BookingView
	res.decode(t, &bookings)
	require.Len(t, bookings, 1)
	assert.Equal(t, b.ID, bookings[0].ID)
}

func TestCustomerLoginAndCheck(t *testing.T) {
	e := newTestEnv(t)
	require.Equal(t, http.StatusCreated, register(e, "ana@x.com", "Str0ng!Pass").Code)

	res := e.do(http.MethodGet, "/api/customer/check", nil, nil)
	assert.JSONEq(t, `{"authenticated":false}`, res.Body.String())

	res = e.do(http.MethodPost, "/api/customer/login", map[string]any{"email": "ana@x.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid email or password", res.env.Error)

	res = e.do(http.MethodPost, "/api/customer/login", map[string]any{"email": " Ana@X.com ", "password": "Str0ng!Pass"}, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	cookie := res.cookie(t)

	res = e.do(http.MethodGet, "/api/customer/check", nil, cookie)
	assert.Contains(t, res.Body.String(), `"authenticated":true`)
	assert.Contains(t, res.Body.String(), `"email":"ana@x.com"`)

	// a customer session is not an admin session
	res = e.do(http.MethodGet, "/api/bookings", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = e.do(http.MethodGet, "/api/customer/pets", nil, cookie)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestCustomerProfileAndPassword(t *testing.T) {
	e := newTestEnv(t)
	res := register(e, "ana@x.com", "Str0ng!Pass")
	require.Equal(t, http.StatusCreated, res.Code)
	cookie := res.cookie(t)

	res = e.do(http.MethodPut, "/api/customer/profile", map[string]any{"name": "Ana Maria", "email": "maria@x.com"}, cookie)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	user, err := e.store.GetUserByEmail(context.Background(), "maria@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	res = e.do(http.MethodPut, "/api/customer/password", map[string]any{"currentPassword": "bad", "newPassword": "N3w!Password"}, cookie)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Current password is incorrect", res.env.Error)

	res = e.do(http.MethodPut, "/api/customer/password", map[string]any{"currentPassword": "Str0ng!Pass", "newPassword": "N3w!Password"}, cookie)
	assert.Equal(t, http.StatusOK, res.Code)

	res = e.do(http.MethodPost, "/api/customer/login", map[string]any{"email": "maria@x.com", "password": "N3w!Password"}, nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestCustomerForgotPassword(t *testing.T) {
	e := newTestEnv(t)
	require.Equal(t, http.StatusCreated, register(e, "ana@x.com", "Str0ng!Pass").Code)

	res := e.do(http.MethodPost, "/api/customer/forgot-password", map[string]any{"email": "nobody@x.com"}, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = e.do(http.MethodPost, "/api/customer/forgot-password", map[string]any{"email": "ana@x.com"}, nil)
	require.Equal(t, http.StatusOK, res.Code)

	e.dispatcher.Wait()
	resets := e.sender.ofKind(services.KindPasswordReset)
	require.Len(t, resets, 1)
	assert.Equal(t, "ana@x.com", resets[0].To)
	require.NotEmpty(t, resets[0].TempPassword)

	res = e.do(http.MethodPost, "/api/customer/login", map[string]any{"email": "ana@x.com", "password": resets[0].TempPassword}, nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestAdminForgotPassword(t *testing.T) {
	e := newTestEnv(t)

	res := e.do(http.MethodPost, "/api/admin/forgot-password", map[string]any{"email": "ghost@pawcare.test"}, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = e.do(http.MethodPost, "/api/admin/forgot-password", map[string]any{"email": "admin@pawcare.test"}, nil)
	require.Equal(t, http.StatusOK, res.Code)

	e.dispatcher.Wait()
	resets := e.sender.ofKind(services.KindPasswordReset)
	require.Len(t, resets, 1)

	res = e.do(http.MethodPost, "/api/auth/login", map[string]any{"username": adminUser, "password": resets[0].TempPassword}, nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestFeedback(t *testing.T) {
	e := newTestEnv(t)
	entry := func(rating int, public bool) map[string]any {
		return map[string]any{
			"name": "Ana", "email": "ana@x.com", "rating": rating,
			"category": "service", "message": "Lovely walkers", "public": public,
		}
	}

	for _, rating := range []int{0, 6} {
		res := e.do(http.MethodPost, "/api/feedback", entry(rating, true), nil)
		assert.Equal(t, http.StatusBadRequest, res.Code, "rating %d", rating)
	}

	res := e.do(http.MethodPost, "/api/feedback", map[string]any{"name": "Ana", "email": "ana@x.com", "category": "x", "message": "y"}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = e.do(http.MethodPost, "/api/feedback", entry(3, true), nil)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	res = e.do(http.MethodPost, "/api/feedback", entry(5, false), nil)
	require.Equal(t, http.StatusCreated, res.Code)

	res = e.do(http.MethodGet, "/api/feedback/public", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var public []models.Feedback
	res.decode(t, &public)
	require.Len(t, public, 1)
	assert.Equal(t, 3, public[0].Rating)

	cookie := e.loginAdmin()
	res = e.do(http.MethodGet, "/api/feedback", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)
	var all []models.Feedback
	res.decode(t, &all)
	assert.Len(t, all, 2)

	e.dispatcher.Wait()
	assert.Len(t, e.sender.ofKind(services.KindNewFeedback), 2)
}

func TestServicesCatalogue(t *testing.T) {
	e := newTestEnv(t)

	res := e.do(http.MethodGet, "/api/services", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var catalogue []models.Service
	res.decode(t, &catalogue)
	assert.Len(t, catalogue, len(models.DefaultServices))

	res = e.do(http.MethodPost, "/api/services", map[string]any{"name": "Cat Cuddles", "price": 15}, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	cookie := e.loginAdmin()
	res = e.do(http.MethodPost, "/api/services", map[string]any{"name": "Cat Cuddles", "description": "Thirty minutes of cuddles", "price": 15, "duration_minutes": 30}, cookie)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	res = e.do(http.MethodGet, "/api/services/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Invalid ID", res.env.Error)

	res = e.do(http.MethodGet, "/api/services/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestExportExcel(t *testing.T) {
	e := newTestEnv(t)
	e.createBooking(map[string]any{"name": "Ana", "email": "ana@x.com", "phone": "9999999999", "service": "grooming"})
	cookie := e.loginAdmin()

	res := e.do(http.MethodGet, "/api/export/excel", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, services.NewExcelExporter().ContentType(), res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"), "pawcare-data-")
	assert.NotZero(t, res.Body.Len())
}

func TestDashboardAndNotifications(t *testing.T) {
	e := newTestEnv(t)
	e.createBooking(map[string]any{"name": "Ana", "email": "ana@x.com", "phone": "9999999999", "service": "grooming"})
	e.dispatcher.Wait()
	cookie := e.loginAdmin()

	res := e.do(http.MethodGet, "/api/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)
	var stats models.DashboardStats
	res.decode(t, &stats)
	assert.EqualValues(t, 1, stats.TotalBookings)
	assert.EqualValues(t, 1, stats.BookingsByStatus["pending"])
	assert.EqualValues(t, 1, stats.TotalCustomers)

	res = e.do(http.MethodGet, "/api/notifications?limit=1", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)
	var logs []models.NotificationLog
	res.decode(t, &logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "sent", logs[0].Status)

	res = e.do(http.MethodGet, "/api/notifications?limit=zero", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestUnknownAPIRoute(t *testing.T) {
	e := newTestEnv(t)

	res := e.do(http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.False(t, res.env.Success)
}
