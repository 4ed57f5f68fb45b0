// Package rest wires the HTTP surface of the service.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	commandbus "ziwei-backend/application/commands/bus"
	querybus "ziwei-backend/application/queries/bus"
	appservices "ziwei-backend/application/services"
	"ziwei-backend/domain/knowledge"
	"ziwei-backend/infrastructure/config"
	"ziwei-backend/interfaces/http/rest/handlers"
	"ziwei-backend/interfaces/http/rest/middleware"
	"ziwei-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus    *commandbus.CommandBus
	queryBus      *querybus.QueryBus
	conversations *appservices.ConversationService
	registry      *knowledge.Registry
	validator     *auth.JWTValidator
	cfg           *config.Config
	logger        *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	conversations *appservices.ConversationService,
	registry *knowledge.Registry,
	validator *auth.JWTValidator,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus:    commandBus,
		queryBus:      queryBus,
		conversations: conversations,
		registry:      registry,
		validator:     validator,
		cfg:           cfg,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.ziwei.app"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		authMiddleware := middleware.NewAuthMiddleware(rt.validator, rt.cfg.IsLambda, rt.logger)
		r.Use(authMiddleware.Authenticate)

		chartHandler := handlers.NewChartHandler(rt.queryBus, rt.logger)
		r.Route("/interpretations", func(r chi.Router) {
			r.Post("/", chartHandler.InterpretChart)
			r.Post("/enrich", chartHandler.EnrichChart)
		})
		r.Post("/compatibility", chartHandler.CompareCharts)

		conversationHandler := handlers.NewConversationHandler(rt.commandBus, rt.conversations, rt.logger)
		r.Route("/conversations", func(r chi.Router) {
			r.Post("/", conversationHandler.StartConversation)
			r.Get("/{sessionId}", conversationHandler.GetConversation)
			r.Delete("/{sessionId}", conversationHandler.EndConversation)
			r.Post("/{sessionId}/messages", conversationHandler.SendMessage)
			r.Post("/{sessionId}/summary", conversationHandler.SummarizeConversation)
			r.Get("/{sessionId}/quality", conversationHandler.GetQuality)
		})

		knowledgeHandler := handlers.NewKnowledgeHandler(rt.registry)
		r.Route("/knowledge", func(r chi.Router) {
			r.Get("/palaces", knowledgeHandler.ListPalaces)
			r.Get("/palaces/{key}", knowledgeHandler.GetPalace)
			r.Get("/stars", knowledgeHandler.ListStars)
			r.Get("/stars/{key}", knowledgeHandler.GetStar)
			r.Get("/transformations", knowledgeHandler.ListTransformations)
			r.Get("/rules", knowledgeHandler.ListRules)
			r.Get("/counts", knowledgeHandler.GetCounts)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready once the knowledge base is loaded
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !rt.registry.Loaded() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"loading"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
