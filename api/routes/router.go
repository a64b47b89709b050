package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopease/shopease-backend/api/controllers"
	"github.com/shopease/shopease-backend/api/middleware"
	"github.com/shopease/shopease-backend/api/responses"
	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/enquiries"
	"github.com/shopease/shopease-backend/pkg/config"
	"github.com/shopease/shopease-backend/pkg/db"
	"github.com/shopease/shopease-backend/pkg/logger"
	"github.com/shopease/shopease-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	catalogService catalog.Service,
	enquiryService enquiries.Service,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
) http.Handler {
	opts := responses.Options{ExposeDetails: !cfg.App.IsProd()}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg, opts),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(dbP, logg, opts))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(catalogService, logg, opts))
		r.Get("/categories", controllers.ProductCategories(catalogService, logg, opts))
		r.Get("/featured", controllers.FeaturedProducts(catalogService, logg, opts))
		r.Get("/featured/{limit}", controllers.FeaturedProducts(catalogService, logg, opts))
		r.Get("/category/{category}", controllers.ProductsByCategory(catalogService, logg, opts))
		r.Get("/{id}", controllers.GetProduct(catalogService, logg, opts))
	})

	r.Route("/api/enquiries", func(r chi.Router) {
		r.Get("/", controllers.ListEnquiries(enquiryService, logg, opts))
		r.Post("/", controllers.SubmitEnquiry(enquiryService, logg, opts))
		r.Put("/{id}/status", controllers.UpdateEnquiryStatus(enquiryService, logg, opts))
	})

	return r
}
