// Package router wires the gin engine, middleware chain and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/middleware"
)

// Handlers groups the handlers the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Customer *handler.CustomerHandler
	Lead     *handler.LeadHandler
}

// Config holds the router dependencies.
type Config struct {
	Mode        string
	ServiceName string
	JWTService  *auth.JWTService
	Blacklist   *auth.TokenBlacklist
	Logger      *zap.Logger
	Handlers    Handlers
}

// New builds the gin engine with the full middleware chain and all
// routes mounted under /api.
func New(cfg Config) *gin.Engine {
	gin.SetMode(mapGinMode(cfg.Mode))
	handler.RegisterLeadValidators()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Secure(),
		middleware.CORS(),
		logger.GinMiddleware(cfg.Logger),
		logger.GinRecovery(cfg.Logger),
		otelgin.Middleware(cfg.ServiceName),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	jwtCfg := middleware.JWTConfig{
		Validator: cfg.JWTService,
		Logger:    cfg.Logger,
		SkipPaths: []string{
			"/api/auth/register",
			"/api/auth/login",
		},
	}
	if cfg.Blacklist != nil {
		jwtCfg.Blacklist = cfg.Blacklist
	}

	api := engine.Group("/api")
	api.Use(middleware.JWT(jwtCfg))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", cfg.Handlers.Auth.Register)
		authGroup.POST("/login", cfg.Handlers.Auth.Login)
		authGroup.GET("/me", cfg.Handlers.Auth.Me)
		authGroup.POST("/logout", cfg.Handlers.Auth.Logout)
	}

	customers := api.Group("/customers")
	{
		customers.POST("", cfg.Handlers.Customer.Create)
		customers.GET("", cfg.Handlers.Customer.List)
		customers.GET("/:id", cfg.Handlers.Customer.Get)
		customers.PUT("/:id", cfg.Handlers.Customer.Update)
		customers.DELETE("/:id", cfg.Handlers.Customer.Delete)

		customers.POST("/:id/leads", withParamAlias("id", "customerId", cfg.Handlers.Lead.Create))
		customers.GET("/:id/leads", withParamAlias("id", "customerId", cfg.Handlers.Lead.List))
	}

	leads := api.Group("/leads")
	{
		leads.PUT("/:id", cfg.Handlers.Lead.Update)
		leads.DELETE("/:id", cfg.Handlers.Lead.Delete)
	}

	return engine
}

// withParamAlias exposes a path parameter under a second name so
// nested routes can share the customers group wildcard.
func withParamAlias(from, to string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: to, Value: c.Param(from)})
		h(c)
	}
}

func mapGinMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
