package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawcare-backend/config"
	"pawcare-backend/controllers"
	"pawcare-backend/logger"
	"pawcare-backend/models"
	"pawcare-backend/routes"
	"pawcare-backend/services"
	"pawcare-backend/session"
	"pawcare-backend/store"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFmt),
		App:    "pawcare",
		Output: os.Stdout,
	})

	if err := run(cfg, appLog); err != nil {
		appLog.Error("server stopped", logger.Fields{"error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLog logger.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.Open(cfg.DB, appLog)
	if err != nil {
		return err
	}
	defer db.Close()

	seed := store.Seed{
		AdminUsername: cfg.Admin.Username,
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
		Services:      models.DefaultServices,
	}
	generated := seed.AdminPassword == ""
	if generated {
		if seed.AdminPassword, err = utils.GenerateTempPassword(16); err != nil {
			return err
		}
	}
	ctx := context.Background()
	res, err := db.Init(ctx, seed)
	if err != nil {
		return err
	}
	if res.AdminCreated && generated {
		appLog.Warn("default admin created with a generated password, change it after first login", logger.Fields{
			"username": seed.AdminUsername,
			"password": seed.AdminPassword,
		})
	}

	sessionStore, err := newSessionStore(cfg, db)
	if err != nil {
		return err
	}
	sweeper, err := services.StartSessionSweeper(sessionStore, appLog)
	if err != nil {
		return err
	}
	defer sweeper.Stop()

	sessions := session.NewManager(sessionStore, session.Options{
		Secret:      cfg.Session.Secret,
		Secure:      cfg.IsProduction(),
		TTL:         cfg.Session.TTL,
		RememberTTL: cfg.Session.RememberTTL,
	}, appLog)

	dispatcher := services.NewDispatcher(db, appLog, senders(cfg, appLog)...)
	defer dispatcher.Wait()

	handler := controllers.NewHandler(db, sessions, dispatcher, services.NewExcelExporter(), cfg.SMTP.Operator, appLog)
	r := routes.SetupRouter(routes.Deps{
		Config:   cfg,
		Handler:  handler,
		Sessions: sessions,
		Limits:   routes.DefaultLimits(),
		Log:      appLog,
	})
	if gin.Mode() == gin.DebugMode {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("PawCare API listening", logger.Fields{"port": cfg.Port, "env": cfg.Env, "db": cfg.DB.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		appLog.Info("shutting down", logger.Fields{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionStore(cfg *config.Config, db *store.GormStore) (session.Store, error) {
	if cfg.Session.Store == "database" {
		return session.NewGormStore(db.DB())
	}
	return session.NewMemoryStore(), nil
}

// senders picks the delivery channels that are configured. Without SMTP,
// email notifications only reach the log.
func senders(cfg *config.Config, appLog logger.Logger) []services.Sender {
	var out []services.Sender
	if cfg.SMTP.Enabled() {
		out = append(out, services.NewEmailSender(cfg.SMTP))
	} else {
		appLog.Warn("SMTP not configured, notifications will be logged only", nil)
		out = append(out, services.NewLogSender(appLog))
	}
	if cfg.Twilio.Enabled() {
		out = append(out, services.NewSMSSender(cfg.Twilio))
	}
	return out
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
