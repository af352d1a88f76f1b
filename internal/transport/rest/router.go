package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/edustream-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Videos    *VideoHandler
	Downloads *DownloadHandler
	Health    *HealthHandler

	// Media serves stored blobs under /media/. Nil unless blobs live on
	// the local filesystem.
	Media http.Handler
}

// RouterOptions configures cross-cutting behaviour of the router.
type RouterOptions struct {
	// Middleware wraps every request, outermost first.
	Middleware []middleware.Middleware

	// WriteLimit returns a rate limit for the named write endpoint.
	// Nil disables rate limiting.
	WriteLimit func(name string) middleware.Middleware
}

// NewRouter builds the HTTP API.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(opts.Middleware...))

	limit := func(name string) func(http.Handler) http.Handler {
		if opts.WriteLimit == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return opts.WriteLimit(name)
	}

	r.Get("/", banner)

	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.Videos.List)
		r.With(limit("upload")).Post("/", h.Videos.Create)
		r.Get("/{id}", h.Videos.Get)
		r.With(limit("catalog")).Put("/{id}", h.Videos.Update)
		r.With(limit("catalog")).Delete("/{id}", h.Videos.Delete)
	})

	r.With(limit("download")).Post("/download", h.Downloads.Record)
	r.Get("/downloads", h.Downloads.ListForUser)

	if h.Media != nil {
		r.Handle("/media/*", http.StripPrefix("/media/", h.Media))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func banner(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "EduStream API Running"})
}
