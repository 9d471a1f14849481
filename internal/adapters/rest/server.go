package rest

import (
	"context"
	"net/http"

	core_port "estate-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	allowedOrigins []string,
	propertyHandlers *PropertyHandler,
	listingHandlers *ListingHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog surface.
		r.Get("/listings", listingHandlers.GetListingPage)
		r.Get("/listings/{slug}", listingHandlers.GetListingBySlug)

		// Management surface. The gateway authenticates and forwards the
		// caller identity in X-User-ID; requests without it are rejected.
		r.Group(func(r chi.Router) {
			r.Use(IdentityMiddleware)

			r.Get("/properties", propertyHandlers.GetAllProperties)
			r.Post("/properties", propertyHandlers.CreateProperty)
			r.Get("/properties/{propertyID}", propertyHandlers.GetPropertyByID)
			r.Put("/properties/{propertyID}", propertyHandlers.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyHandlers.DeleteProperty)

			r.Put("/properties/{propertyID}/images", propertyHandlers.UpdatePropertyImages)

			r.Post("/properties/{propertyID}/publish", propertyHandlers.PublishProperty)
			r.Post("/properties/{propertyID}/unpublish", propertyHandlers.UnpublishProperty)
			r.Post("/properties/{propertyID}/draft", propertyHandlers.DraftProperty)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the underlying mux for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
