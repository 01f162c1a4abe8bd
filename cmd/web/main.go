package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"salonweb/docs"
	"salonweb/internal/config"
	"salonweb/internal/database"
	"salonweb/internal/database/migration"
	"salonweb/internal/email"
	handlers "salonweb/internal/http/handler"
	"salonweb/internal/http/middleware"
	"salonweb/internal/logging"
	"salonweb/internal/metrics"
	appotel "salonweb/internal/otel"
	"salonweb/internal/ratelimit"
	"salonweb/internal/repository/postgres"
	"salonweb/internal/service"
	"salonweb/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 5 * time.Minute
	bodyLimit       = 64 * 1024
)

// @title Salon Website API
// @version 1.0
// @description Contact form and site content endpoints for the salon website.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(exitCode(logger, run(cfg, logger)))
}

// exitCode logs err, flushes the logger and returns the process exit status.
func exitCode(logger *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logger.Error("server_exit", zap.Error(err))
		code = 1
	}
	_ = logger.Sync()
	return code
}

// configureSwagger points the API docs at the public base URL.
func configureSwagger(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse BASE_URL: %w", err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("BASE_URL must be an absolute http(s) URL, got %q", baseURL)
	}
	docs.SwaggerInfo.Host = u.Host
	docs.SwaggerInfo.Schemes = []string{u.Scheme}
	return nil
}

func run(cfg *config.AppConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	contactMetrics, err := metrics.NewContactMetrics(reg)
	if err != nil {
		return fmt.Errorf("register contact metrics: %w", err)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	// Optional inquiry archive
	var db *sql.DB
	contactOpts := service.ContactOptions{
		Recipient: cfg.Contact.Recipient,
		From:      cfg.Contact.From,
		Recorder:  contactMetrics,
		Logger:    logger,
	}
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		contactOpts.Repo = postgres.NewInquiryPostgres(db)
		logger.Info("inquiry_archive_enabled", zap.String("db_host", cfg.Database.Host))
	}

	// Optional gallery storage
	var store storage.Storage
	if cfg.MinIO.Enabled() {
		store, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			// Pages fall back to the bundled gallery.
			logger.Warn("gallery_storage_disabled", zap.Error(err))
			store = nil
		}
	}

	var mailer email.Mailer
	if cfg.Email.APIKey != "" {
		mailer, err = email.NewHTTPMailer(cfg.Email.APIURL, cfg.Email.APIKey, cfg.Email.Timeout)
		if err != nil {
			return fmt.Errorf("init mailer: %w", err)
		}
	} else {
		logger.Warn("email_api_key_missing", zap.String("hint", "inquiries are logged, not sent"))
		mailer = email.NewLogMailer(logger)
	}

	limiter := ratelimit.New(ratelimit.Rule{Limit: cfg.Contact.RateLimit, Window: cfg.Contact.RateWindow})
	go limiter.Run(ctx, sweepInterval)

	contactSvc := service.NewContactService(mailer, limiter, contactOpts)
	gallerySvc := service.NewGalleryService(store, logger)

	site := handlers.Site{
		BaseURL:    cfg.BaseURL,
		GTMID:      cfg.Integrations.GTMID,
		MapsAPIKey: cfg.Integrations.MapsAPIKey,
	}

	if err := configureSwagger(cfg.BaseURL); err != nil {
		return err
	}

	app := fiber.New(handlers.WithTrustedProxies(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(site, logger),
		BodyLimit:             bodyLimit,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: true,
	}, cfg.Proxy.TrustedProxies, cfg.Proxy.Header))

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.Logger(logger, handlers.ClientIP))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		Site:     site,
		Contact:  contactSvc,
		Gallery:  gallerySvc,
		DB:       db,
		Gatherer: reg,
		Logger:   logger,
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	addr := ":" + cfg.Port
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server_listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		serveErr <- app.Listen(addr)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		logger.Info("server_shutdown_start")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing_shutdown_failed", zap.Error(err))
	}
	logger.Info("server_shutdown_complete")
	return nil
}
