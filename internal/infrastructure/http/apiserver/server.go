// Package apiserver provides the JSON API HTTP server for the cooking
// assistant. The mobile app is the only intended client.
package apiserver

import (
	"context"
	"net/http"

	"github.com/fridgewise/core/internal/infrastructure/config"
	"github.com/fridgewise/core/internal/infrastructure/http/handlers"
	"github.com/fridgewise/core/internal/infrastructure/http/middleware"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server represents the JSON API HTTP server
type Server struct {
	config           *config.Config
	logger           *zap.Logger
	server           *http.Server
	router           *chi.Mux
	inventoryService inbound.InventoryService
	chefService      inbound.ChefService
	libraryService   inbound.LibraryService
	shoppingService  inbound.ShoppingService
	statsService     inbound.StatsService
	settingsService  inbound.SettingsService
	openAPIHandler   *OpenAPIHandler
	health           *healthcheck.HealthCheck
}

// NewServer creates a new API server instance
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	store outbound.CollectionStore,
	inventoryService inbound.InventoryService,
	chefService inbound.ChefService,
	libraryService inbound.LibraryService,
	shoppingService inbound.ShoppingService,
	statsService inbound.StatsService,
	settingsService inbound.SettingsService,
) *Server {
	server := &Server{
		config:           cfg,
		logger:           log,
		inventoryService: inventoryService,
		chefService:      chefService,
		libraryService:   libraryService,
		shoppingService:  shoppingService,
		statsService:     statsService,
		settingsService:  settingsService,
		openAPIHandler:   NewOpenAPIHandler(log),
		health:           buildHealthCheck(cfg, store),
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// Generation calls stream nothing and can run long, so the request
	// timeout must cover the full upstream call
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(middleware.JSONOnly())

	// Health check endpoints
	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())

	// API documentation
	r.Get("/api/v1/openapi.yaml", s.openAPIHandler.ServeSpec)
	r.Get("/api/v1/docs", s.openAPIHandler.ServeSwaggerUI)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	inventoryH := handlers.NewInventoryHandlers(s.inventoryService, s.logger)
	chefH := handlers.NewChefHandlers(s.chefService, s.logger)
	libraryH := handlers.NewLibraryHandlers(s.libraryService, s.logger)
	shoppingH := handlers.NewShoppingHandlers(s.shoppingService, s.logger)
	statsH := handlers.NewStatsHandlers(s.statsService, s.logger)
	settingsH := handlers.NewSettingsHandlers(s.settingsService, s.logger)

	// Fridge inventory routes
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", inventoryH.List)
		r.Post("/", inventoryH.Add)
		r.Post("/import", inventoryH.Import)
		r.Get("/ranked", inventoryH.Ranked)
		r.Get("/expiring", inventoryH.Expiring)
		r.Get("/overdue", inventoryH.Overdue)
		r.Get("/grouped", inventoryH.Grouped)
		r.Get("/savings", inventoryH.Savings)
		r.Put("/{id}", inventoryH.Update)
		r.Delete("/{id}", inventoryH.Delete)
	})

	// Generation routes
	r.Route("/chef", func(r chi.Router) {
		r.Post("/recipe", chefH.GenerateRecipe)
		r.Post("/menu", chefH.GenerateMenu)
		r.Post("/plan", chefH.GenerateMealPlan)
		r.Post("/scan", chefH.ScanFridge)
		r.Post("/chat", chefH.Chat)
	})

	// Saved recipes and history routes
	r.Route("/library", func(r chi.Router) {
		r.Get("/saved", libraryH.ListSaved)
		r.Post("/saved", libraryH.Save)
		r.Delete("/saved/{id}", libraryH.RemoveSaved)
		r.Get("/history", libraryH.ListHistory)
		r.Post("/history", libraryH.AddHistory)
	})

	// Shopping list routes
	r.Route("/shopping", func(r chi.Router) {
		r.Get("/", shoppingH.List)
		r.Post("/", shoppingH.Add)
		r.Post("/from-recipe", shoppingH.AddFromRecipe)
		r.Post("/import", shoppingH.Import)
		r.Delete("/checked", shoppingH.ClearChecked)
		r.Post("/{id}/toggle", shoppingH.Toggle)
		r.Delete("/{id}", shoppingH.Delete)
	})

	// Impact statistics
	r.Get("/stats", statsH.Snapshot)

	// Settings and reset
	r.Route("/settings", func(r chi.Router) {
		r.Get("/onboarding", settingsH.GetOnboarding)
		r.Put("/onboarding", settingsH.SetOnboarding)
		r.Post("/reset", settingsH.Reset)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Router returns the configured router, mainly for tests
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// buildHealthCheck wires the dependency probes behind the health
// endpoints. A missing generation credential degrades the service
// instead of failing it; everything except generation still works.
func buildHealthCheck(cfg *config.Config, store outbound.CollectionStore) *healthcheck.HealthCheck {
	hc := healthcheck.New("fridgewise-api", cfg.App.Version)

	hc.Register("store", healthcheck.NewCustomChecker("store", func(ctx context.Context) (healthcheck.Status, string, interface{}) {
		if _, err := store.Get(ctx, outbound.CollectionStats); err != nil {
			return healthcheck.StatusUnhealthy, err.Error(), nil
		}
		return healthcheck.StatusHealthy, "", map[string]string{"driver": cfg.Storage.Driver}
	}))

	hc.Register("generation", healthcheck.NewCustomChecker("generation", func(ctx context.Context) (healthcheck.Status, string, interface{}) {
		if cfg.Generation.APIKey == "" {
			return healthcheck.StatusDegraded, "generation credential not configured", nil
		}
		return healthcheck.StatusHealthy, "", map[string]string{"model": cfg.Generation.Model}
	}))

	return hc
}
