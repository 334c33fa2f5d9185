package router

import (
	"golang.org/x/time/rate"

	"github.com/gin-gonic/gin"

	"github.com/medscribe/notetaker-api/internal/handler/health"
	"github.com/medscribe/notetaker-api/internal/handler/prometheus"
	"github.com/medscribe/notetaker-api/internal/middleware"
)

// Handler registers its routes on the versioned API group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
	Timeout    middleware.TimeoutConfig
}

type Router struct {
	engine   *gin.Engine
	promH    *prometheus.Handler
	healthH  *health.Handler
	handlers []Handler
}

func NewRouter(config Config, promH *prometheus.Handler, healthH *health.Handler, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		promH.Middleware(),
		middleware.Timeout(config.Timeout),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return &Router{
		engine:   engine,
		promH:    promH,
		healthH:  healthH,
		handlers: handlers,
	}
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")
	r.healthH.RegisterRoutes(api)
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}

	r.engine.GET("/health", r.healthH.HealthCheck)
	r.engine.GET("/metrics", r.promH.Handler())
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
