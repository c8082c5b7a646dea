package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ndjimba/internal/core/port"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig, propertyHandler *PropertyHandler, authHandler *AuthHandler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      NewRouter(cfg, propertyHandler, authHandler, baseLogger),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: baseLogger,
	}
}

// NewRouter wires the middleware chain and the /api/v1 routes.
func NewRouter(cfg ServerConfig, propertyHandler *PropertyHandler, authHandler *AuthHandler, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", propertyHandler.GetHomeFeed)
		r.Get("/filters/options", propertyHandler.GetFilterOptions)

		r.Get("/properties", propertyHandler.FindProperties)
		r.Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)
		r.Post("/properties/{propertyID}/reports", propertyHandler.ReportListing)

		r.Post("/phone/validate", authHandler.ValidatePhone)
		r.Post("/auth/phone", authHandler.SubmitPhone)
		r.Post("/auth/login", authHandler.Login)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
