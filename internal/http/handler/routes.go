package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"salonweb/internal/service"
)

// Deps are the collaborators routes are wired to.
type Deps struct {
	Site    Site
	Contact service.ContactService
	Gallery service.GalleryService
	// DB is pinged by /health when the inquiry archive is enabled; nil otherwise.
	DB *sql.DB
	// Gatherer backs /metrics when set.
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	// Pages
	app.Get("/", HomePage(d.Site))
	app.Get("/services", ServicesPage(d.Site))
	app.Get("/gallery", GalleryPage(d.Site, d.Gallery))
	app.Get("/about", AboutPage(d.Site))
	app.Get("/contact", ContactPage(d.Site))
	app.Post("/contact", SubmitContactForm(d.Site, d.Contact))
	app.Get("/areas/:slug", AreaPage(d.Site))

	// JSON API
	api := app.Group("/api")
	api.Post("/contact", SubmitContact(d.Contact))
	api.Get("/business", GetBusiness(d.Site))
	api.Get("/services", ListServices())
	api.Get("/areas", ListAreas())
	api.Get("/areas/:slug", GetArea())
	api.Get("/gallery", ListGallery(d.Gallery))

	// Ops
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{ErrorLog: zap.NewStdLog(d.Logger)})))
	}
}
