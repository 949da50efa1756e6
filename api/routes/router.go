package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/controllers"
	cartcontrollers "github.com/cosmic-community/luxe-fashion-boutique-clone/api/controllers/cart"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/middleware"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/auth"
	cartsvc "github.com/cosmic-community/luxe-fashion-boutique-clone/internal/cart"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/contact"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/metrics"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	cms *catalog.Client,
	authService *auth.Service,
	cartService *cartsvc.Service,
	contactService *contact.Service,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient, cms))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, redisClient, logg)).Post("/signup", controllers.AuthSignup(authService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.Auth(cfg.JWT, logg)).Get("/me", controllers.AuthMe(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/contact", controllers.ContactSubmit(contactService, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(cms, logg))
			r.Get("/{slug}", controllers.ProductDetail(cms, logg))
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoryList(cms, logg))
			r.Get("/{slug}", controllers.CategoryDetail(cms, logg))
		})
		r.Route("/collections", func(r chi.Router) {
			r.Get("/", controllers.CollectionList(cms, logg))
			r.Get("/{slug}", controllers.CollectionDetail(cms, logg))
		})
		r.Get("/reviews", controllers.ReviewList(cms, logg))
		r.Route("/events", func(r chi.Router) {
			r.Get("/", controllers.EventList(cms, logg))
			r.Get("/{slug}", controllers.EventDetail(cms, logg))
		})
		r.Get("/terms-of-service", controllers.TermsShow(cms, logg))

		r.Route("/blog", func(r chi.Router) {
			r.Get("/posts", controllers.PostList(cms, logg))
			r.Get("/posts/{slug}", controllers.PostDetail(cms, logg))
			r.Get("/authors", controllers.AuthorList(cms, logg))
			r.Get("/authors/{slug}", controllers.AuthorDetail(cms, logg))
			r.Get("/categories", controllers.BlogCategoryList(cms, logg))
			r.Get("/categories/{slug}", controllers.BlogCategoryDetail(cms, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(cfg.Cart, logg))
			r.Get("/", cartcontrollers.CartFetch(cartService, logg))
			r.Delete("/", cartcontrollers.CartClear(cartService, logg))
			r.Post("/items", cartcontrollers.CartAddItem(cartService, logg))
			r.Patch("/items", cartcontrollers.CartUpdateItem(cartService, logg))
			r.Delete("/items", cartcontrollers.CartRemoveItem(cartService, logg))
		})
	})

	return r
}
