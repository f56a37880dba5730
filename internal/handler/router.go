package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beatbox-store/internal/handler/api"
	"beatbox-store/internal/handler/middleware"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout   *api.CheckoutHandler
	Settlement *api.SettlementHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers) {
	engine.GET("/health", healthCheck)
	if m != nil {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/makeTransaction", Handler: h.Checkout.Merchant},
			{Method: http.MethodPost, Path: "/makeTransaction", Handler: h.Checkout.MakeTransaction, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			{Method: http.MethodGet, Path: "/products", Handler: h.Checkout.ListProducts},
			{Method: http.MethodGet, Path: "/transactionStatus", Handler: h.Settlement.TransactionStatus, Mw: []gin.HandlerFunc{limiter.Middleware()}},
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
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
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
