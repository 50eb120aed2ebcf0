package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/amherst-artisan-market/market-backend/internal/config"
	"github.com/amherst-artisan-market/market-backend/internal/modules/admin"
	"github.com/amherst-artisan-market/market-backend/internal/modules/application"
	"github.com/amherst-artisan-market/market-backend/internal/modules/notify"
	"github.com/amherst-artisan-market/market-backend/internal/modules/vendor"
	"github.com/amherst-artisan-market/market-backend/internal/platform/kvstore"
	"github.com/amherst-artisan-market/market-backend/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from environment")
	}

	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	logrus.Info("connected to vendor database")

	kv, err := kvstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to key-value store")
	}
	logrus.Info("connected to key-value store")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.RequestID)
	router.Use(web.CORS)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		web.JSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// ── Admin sessions ──────────────────────────────────────
	adminService := admin.NewService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.SessionTTL, cfg.LoginFailureDelay)
	admin.NewHandler(adminService).RegisterRoutes(router)

	// ── Vendor applications ─────────────────────────────────
	mailer := notify.NewResendMailer(cfg.ResendAPIKey)
	dispatcher := notify.NewDispatcher(mailer, cfg.NotifyFrom, cfg.NotifyTo, cfg.NotifyTimeout)

	appRepo := application.NewKVRepository(kv)
	appService := application.NewService(appRepo, dispatcher)
	application.NewHandler(appService).RegisterRoutes(router, admin.RequireAdmin(adminService))

	// ── Public vendor listing ───────────────────────────────
	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo)
	vendor.NewHandler(vendorService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	logrus.WithField("port", cfg.HTTPPort).Info("market API server starting")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
