package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pawcare-backend/config"
	"pawcare-backend/controllers"
	"pawcare-backend/logger"
	"pawcare-backend/session"
	"pawcare-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// Limits are the rate limiters guarding the API.
type Limits struct {
	General *limiter.Limiter // every /api request
	Auth    *limiter.Limiter // logins and registration, failures only
	Booking *limiter.Limiter // public booking form
}

func DefaultLimits() Limits {
	return Limits{
		General: utils.NewLimiter(100, 15*time.Minute),
		Auth:    utils.NewLimiter(5, 15*time.Minute),
		Booking: utils.NewLimiter(10, time.Hour),
	}
}

type Deps struct {
	Config   *config.Config
	Handler  *controllers.Handler
	Sessions *session.Manager
	Limits   Limits
	Log      logger.Logger
}

func SetupRouter(d Deps) *gin.Engine {
	utils.RegisterValidators()

	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(gin.Recovery())
	r.Use(config.PerformanceLogger(d.Log))
	if c, ok := corsMiddleware(d.Config); ok {
		r.Use(c)
	}
	r.Use(SecurityHeaders())

	h := d.Handler
	requireAdmin := d.Sessions.RequireAdmin()
	requireCustomer := d.Sessions.RequireCustomer()
	authLimit := utils.AuthRateLimit(d.Limits.Auth, d.Log)

	api := r.Group("/api")
	api.Use(utils.RateLimit(d.Limits.General), d.Sessions.Middleware())
	{
		api.GET("/health", h.Health)

		// Admin authentication
		auth := api.Group("/auth")
		{
			auth.POST("/login", authLimit, h.AdminLogin)
			auth.POST("/logout", h.Logout)
			auth.GET("/check", h.AdminCheck)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/forgot-password", h.AdminForgotPassword)
			admin.PUT("/profile", requireAdmin, h.UpdateAdminProfile)
			admin.PUT("/password", requireAdmin, h.ChangeAdminPassword)
		}

		// Customer portal
		customer := api.Group("/customer")
		{
			customer.POST("/register", authLimit, h.CustomerRegister)
			customer.POST("/login", authLimit, h.CustomerLogin)
			customer.POST("/logout", h.Logout)
			customer.GET("/check", h.CustomerCheck)
			customer.POST("/forgot-password", h.CustomerForgotPassword)

			customer.PUT("/profile", requireCustomer, h.UpdateCustomerProfile)
			customer.PUT("/password", requireCustomer, h.ChangeCustomerPassword)
			customer.GET("/bookings", requireCustomer, h.GetCustomerBookings)
			customer.GET("/pets", requireCustomer, h.GetCustomerPets)
		}

		services := api.Group("/services")
		{
			services.GET("", h.GetServices)
			services.GET("/:id", h.GetService)
			services.POST("", requireAdmin, h.CreateService)
			services.PUT("/:id", requireAdmin, h.UpdateService)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", utils.RateLimit(d.Limits.Booking), h.CreateBooking)
			bookings.GET("", requireAdmin, h.GetBookings)
			bookings.GET("/:id", requireAdmin, h.GetBooking)
			bookings.PUT("/:id", requireAdmin, h.UpdateBookingStatus)
			bookings.DELETE("/:id", requireAdmin, h.DeleteBooking)
		}

		feedback := api.Group("/feedback")
		{
			feedback.POST("", h.CreateFeedback)
			feedback.GET("", requireAdmin, h.GetFeedback)
			feedback.GET("/public", h.GetPublicFeedback)
		}

		api.GET("/customers", requireAdmin, h.GetCustomers)
		api.GET("/export/excel", requireAdmin, h.ExportExcel)
		api.GET("/dashboard", requireAdmin, h.GetDashboard)
		api.GET("/notifications", requireAdmin, h.GetNotifications)
	}

	r.NoRoute(noRoute(d.Config.StaticDir))
	return r
}

// corsMiddleware allows the configured origins with credentials. Outside
// production an empty list reflects any origin; in production it disables CORS.
func corsMiddleware(cfg *config.Config) (gin.HandlerFunc, bool) {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	switch {
	case len(cfg.CORSOrigin) > 0:
		c.AllowOrigins = cfg.CORSOrigin
	case !cfg.IsProduction():
		c.AllowOriginFunc = func(string) bool { return true }
	default:
		return nil, false
	}
	return cors.New(c), true
}

// noRoute serves the static frontend when one is configured and answers
// unknown API paths with the JSON envelope.
func noRoute(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if staticDir == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
			return
		}

		file := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
