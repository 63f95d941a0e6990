package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Book        *api.BookHandler
	Customer    *api.CustomerHandler
	Reservation *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	binding.EnableDecoderDisallowUnknownFields = true
	httperr.RegisterJSONFieldNames()

	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log, "/health", cfg.Metrics.Path))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && m != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireStaff()
	selfOrStaff := authMiddleware.Authorize(auth.SelfOrStaff("id"))

	apiGroup := engine.Group("/api")
	{
		token := apiGroup.Group("/token")
		addRoutes(token, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
		})

		books := apiGroup.Group("/books")
		books.Use(authMiddleware.RequireAuth())
		addRoutes(books, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Book.List, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPost, Path: "", Handler: h.Book.Create, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/search", Handler: h.Book.Search},
			{Method: http.MethodGet, Path: "/popular", Handler: h.Book.Popular},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Book.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Book.Replace, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Book.Delete, Mw: []gin.HandlerFunc{staff}},
		})

		customers := apiGroup.Group("/customers")
		addRoutes(customers, []route{
			{Method: http.MethodPost, Path: "/create", Handler: h.Customer.Create},
		})
		authed := customers.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/lookup", Handler: h.Customer.Lookup},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get, Mw: []gin.HandlerFunc{selfOrStaff}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.Update, Mw: []gin.HandlerFunc{selfOrStaff}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: []gin.HandlerFunc{selfOrStaff}},
		})

		// ownership of a reservation is checked by the engine, which hides foreign rows as 404
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
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
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
