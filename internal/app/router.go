package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ridehail/internal/handler"
	"ridehail/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler    *handler.UserHandler
	DriverHandler  *handler.DriverHandler
	RideHandler    *handler.RideHandler
	PaymentHandler *handler.PaymentHandler
	Logger         *zap.Logger
	AllowedOrigins []string
	RedisClient    *redis.Client        // optional
	NewRelicApp    *newrelic.Application // optional
	HealthCheck    func() error          // optional
}

// crudHandler is implemented by every entity handler.
type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient, deps.Logger))

	router.GET("/health", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerCRUD(router, "/user", deps.UserHandler)
	registerCRUD(router, "/driver", deps.DriverHandler)
	registerCRUD(router, "/ride", deps.RideHandler)
	registerCRUD(router, "/payment", deps.PaymentHandler)

	return router
}

func registerCRUD(router *gin.Engine, root string, h crudHandler) {
	group := router.Group(root)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
