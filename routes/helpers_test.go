package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pawcare-backend/config"
	"pawcare-backend/controllers"
	"pawcare-backend/logger"
	"pawcare-backend/models"
	"pawcare-backend/services"
	"pawcare-backend/session"
	"pawcare-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	adminUser     = "admin"
	adminPassword = "Adm1n!Pass"
	operatorEmail = "owner@pawcare.test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSender struct {
	mu   sync.Mutex
	sent []services.Notification
}

func (s *recordingSender) Channel() string { return services.ChannelEmail }

func (s *recordingSender) Send(_ context.Context, n services.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return nil
}

func (s *recordingSender) ofKind(kind services.Kind) []services.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []services.Notification
	for _, n := range s.sent {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

type testEnv struct {
	t          *testing.T
	router     *gin.Engine
	store      *store.GormStore
	sender     *recordingSender
	dispatcher *services.Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.Init(context.Background(), store.Seed{
		AdminUsername: adminUser,
		AdminEmail:    "admin@pawcare.test",
		AdminPassword: adminPassword,
		Services:      models.DefaultServices,
	})
	require.NoError(t, err)

	sessions := session.NewManager(session.NewMemoryStore(), session.Options{
		Secret:      "test-secret",
		TTL:         time.Hour,
		RememberTTL: 24 * time.Hour,
	}, logger.Nop())

	sender := &recordingSender{}
	dispatcher := services.NewDispatcher(st, logger.Nop(), sender)
	t.Cleanup(dispatcher.Wait)

	h := controllers.NewHandler(st, sessions, dispatcher, services.NewExcelExporter(), operatorEmail, logger.Nop())
	r := SetupRouter(Deps{
		Config:   &config.Config{Env: "test"},
		Handler:  h,
		Sessions: sessions,
		Limits:   DefaultLimits(),
		Log:      logger.Nop(),
	})

	return &testEnv{t: t, router: r, store: st, sender: sender, dispatcher: dispatcher}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type response struct {
	*httptest.ResponseRecorder
	env envelope
}

func (e *testEnv) do(method, path string, body any, cookie *http.Cookie) response {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	res := response{ResponseRecorder: w}
	if json.Valid(w.Body.Bytes()) {
		_ = json.Unmarshal(w.Body.Bytes(), &res.env)
	}
	return res
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.env.Data, v))
}

func (r response) cookie(t *testing.T) *http.Cookie {
	t.Helper()
	for _, c := range r.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("response carries no session cookie")
	return nil
}

func (e *testEnv) loginAdmin() *http.Cookie {
	e.t.Helper()
	res := e.do(http.MethodPost, "/api/auth/login", map[string]any{"username": adminUser, "password": adminPassword}, nil)
	require.Equal(e.t, http.StatusOK, res.Code, res.Body.String())
	return res.cookie(e.t)
}

func (e *testEnv) createBooking(body map[string]any) models.BookingView {
	e.t.Helper()
	res := e.do(http.MethodPost, "/api/bookings", body, nil)
	require.Equal(e.t, http.StatusCreated, res.Code, res.Body.String())
	var b models.BookingView
	res.decode(e.t, &b)
	return b
}
