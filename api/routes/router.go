package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medinathreads/medina-backend/api/controllers"
	"github.com/medinathreads/medina-backend/api/middleware"
	"github.com/medinathreads/medina-backend/internal/adminauth"
	cartsvc "github.com/medinathreads/medina-backend/internal/cart"
	gallerysvc "github.com/medinathreads/medina-backend/internal/gallery"
	ordersvc "github.com/medinathreads/medina-backend/internal/orders"
	productsvc "github.com/medinathreads/medina-backend/internal/products"
	"github.com/medinathreads/medina-backend/pkg/config"
	"github.com/medinathreads/medina-backend/pkg/db"
	"github.com/medinathreads/medina-backend/pkg/logger"
	"github.com/medinathreads/medina-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	client *db.Client,
	httpMetrics *metrics.HTTPMetrics,
	authService adminauth.Service,
	productService productsvc.Service,
	cartService cartsvc.Service,
	orderService ordersvc.Service,
	galleryService gallerysvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	adminOnly := middleware.AdminAuth(cfg.JWT, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/admin/auth", func(r chi.Router) {
		r.Post("/login", controllers.AdminLogin(authService, logg))
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(productService, logg))
		r.Get("/{id}", controllers.GetProduct(productService, logg))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", controllers.CreateProduct(productService, logg))
			r.Put("/", controllers.UpdateProduct(productService, logg))
			r.Delete("/", controllers.DeleteProduct(productService, logg))
			r.Post("/todays-offers", controllers.SetTodaysOffers(productService, logg))
		})
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", controllers.GetCart(cartService, logg))
		r.Post("/", controllers.SaveCart(cartService, logg))
		r.Delete("/", controllers.ClearCart(cartService, logg))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", controllers.CreateOrder(orderService, logg))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", controllers.ListOrders(orderService, logg))
			r.Put("/", controllers.UpdateOrderStatus(orderService, logg))
		})
	})

	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/", controllers.ListGallery(galleryService, logg))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", controllers.CreateGalleryItem(galleryService, logg))
			r.Put("/", controllers.UpdateGalleryItem(galleryService, logg))
			r.Delete("/", controllers.DeleteGalleryItem(galleryService, logg))
		})
	})

	r.Route("/api/debug", func(r chi.Router) {
		r.Use(adminOnly)
		r.Get("/schema", controllers.DebugSchema(client, logg))
		r.Get("/products", controllers.DebugProducts(client, logg))
		r.Get("/product-by-name", controllers.DebugProductByName(client, logg))
	})

	return r
}
