package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/buy-from-me/internal/service"
)

// defaultRequestTimeout applies when the configuration leaves it unset.
const defaultRequestTimeout = 30 * time.Second

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)

	timeout := h.requestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// ops endpoints
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/api/version", h.getServerVersion)

	// uploaded images
	router.Handle(service.ImagesPath+"*", h.staticImages())

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout), middleware.Compress(5, "application/json", "text/html"))

		// routes without authorization
		r.Get("/", h.index)
		r.Post("/token", h.token)
		r.Post("/registration", h.register)
		r.Get("/verification", h.verifyEmail)
		r.Get("/product", h.listProducts)
		r.Get("/product/{id}", h.getProduct)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/user/me", h.me)
			r.Post("/user/verification", h.resendVerification)

			r.Post("/products", h.createProduct)
			r.Put("/product/{id}", h.updateProduct)
			r.Delete("/product/{id}", h.deleteProduct)

			r.Put("/business/{id}", h.updateBusiness)

			r.Post("/upload-file/profile", h.uploadProfileImage)
			r.Post("/upload-file/product/{id}", h.uploadProductImage)
		})
	})

	return router
}

// staticImages serves single files from imagesDir. Directory listings are
// not exposed.
func (h *Handler) staticImages() http.Handler {
	files := http.StripPrefix(service.ImagesPath, http.FileServer(http.Dir(h.imagesDir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
