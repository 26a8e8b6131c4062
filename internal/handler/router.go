package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fittingroom/internal/domain/user"
	"fittingroom/internal/handler/api"
	"fittingroom/internal/handler/middleware"
	"fittingroom/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Lease     *api.LeaseHandler
	Queue     *api.QueueHandler
	Occupancy *api.OccupancyHandler
	Stream    *api.StreamHandler
}

func NewHandlers(lease *api.LeaseHandler, queue *api.QueueHandler, occupancy *api.OccupancyHandler, stream *api.StreamHandler) Handlers {
	return Handlers{Lease: lease, Queue: queue, Occupancy: occupancy, Stream: stream}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer *prometheus.Registry) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.OptionalAuth())

	// streams stay open past the request timeout
	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/rooms/stream", Handler: h.Stream.Rooms},
		{Method: http.MethodGet, Path: "/queue/stream", Handler: h.Stream.Queue},
	})

	bounded := apiGroup.Group("")
	bounded.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	{
		addRoutes(bounded, []route{
			{Method: http.MethodPost, Path: "/leases", Handler: h.Lease.CreateLease},
			{Method: http.MethodPost, Path: "/leases/:id/release", Handler: h.Lease.ReleaseLease,
				Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator)}},

			{Method: http.MethodPost, Path: "/queue", Handler: h.Queue.JoinQueue},
			{Method: http.MethodGet, Path: "/queue/positions", Handler: h.Queue.Positions},
			{Method: http.MethodDelete, Path: "/queue/:id", Handler: h.Queue.CancelEntry},

			{Method: http.MethodGet, Path: "/rooms/occupancy", Handler: h.Occupancy.Occupancy},
			{Method: http.MethodGet, Path: "/rooms/summary", Handler: h.Occupancy.Summary},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
