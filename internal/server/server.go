package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fitlife/internal/auth"
	"fitlife/internal/db"
	"fitlife/internal/plan"
	"fitlife/internal/subscription"
	"fitlife/pkg/logger"
)

// API bundles the collaborators the request handlers need.
type API struct {
	db        *db.PostgresDB
	tokens    *auth.Manager
	generator *plan.Generator
	ledger    *subscription.Ledger
	checkout  subscription.CheckoutProvider
	log       *logger.Logger
}

func NewAPI(database *db.PostgresDB, tokens *auth.Manager, generator *plan.Generator,
	ledger *subscription.Ledger, checkout subscription.CheckoutProvider, log *logger.Logger) *API {
	return &API{
		db:        database,
		tokens:    tokens,
		generator: generator,
		ledger:    ledger,
		checkout:  checkout,
		log:       log,
	}
}

type Server struct {
	server *http.Server
	logger *logger.Logger
}

func NewServer(port string, api *API, corsOrigins []string, log *logger.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", api.handleHealth)

		apiGroup.POST("/auth/register", api.handleRegister)
		apiGroup.POST("/auth/login", api.handleLogin)

		apiGroup.POST("/webhook/stripe", api.handleStripeWebhook)

		authed := apiGroup.Group("")
		authed.Use(api.authRequired())
		{
			authed.GET("/profile", api.handleGetProfile)
			authed.PUT("/profile", api.handleUpdateProfile)
			authed.DELETE("/user", api.handleDeleteAccount)

			authed.POST("/suggestions/workout", api.handleGenerateWorkout)
			authed.POST("/suggestions/nutrition", api.handleGenerateNutrition)
			authed.GET("/suggestions/history", api.handleSuggestionsHistory)
			authed.DELETE("/suggestions/:id", api.handleDeleteSuggestion)

			authed.GET("/subscription/status", api.handleSubscriptionStatus)
			authed.POST("/subscription/checkout", api.handleInitiateCheckout)
			authed.GET("/subscription/checkout/:session_id", api.handlePollCheckout)
		}
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server: httpServer,
		logger: log,
	}
}

func (s *Server) Start() error {
	s.logger.Infow("starting HTTP server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Infow("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
