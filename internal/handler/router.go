package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/handler/api"
	"quoteflow/internal/handler/middleware"
	"quoteflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	requestHandler *api.RequestHandler,
	quoteHandler *api.QuoteHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, requestHandler, quoteHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	requestHandler *api.RequestHandler,
	quoteHandler *api.QuoteHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		requests := apiGroup.Group("/requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: requestHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleCustomer)}},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: requestHandler.Submit,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleCustomer)}},
				{Method: http.MethodPost, Path: "/:id/reopen", Handler: requestHandler.Reopen,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleCustomer)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: requestHandler.Cancel,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleCustomer)}},
				{Method: http.MethodPost, Path: "/:id/match", Handler: requestHandler.Match,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/:id/quotes", Handler: requestHandler.Quotes},
			})
		}

		quotes := apiGroup.Group("/quotes")
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleVendor)}},
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: quoteHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleVendor)}},
				{Method: http.MethodPost, Path: "/:id/send", Handler: quoteHandler.Send,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleVendor)}},
				{Method: http.MethodPost, Path: "/:id/respond", Handler: quoteHandler.Respond,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleCustomer)}},
				{Method: http.MethodPost, Path: "/:id/revise", Handler: quoteHandler.Revise,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleVendor)}},
				{Method: http.MethodPost, Path: "/:id/withdraw", Handler: quoteHandler.Withdraw,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(actor.RoleVendor)}},
				{Method: http.MethodGet, Path: "/:id/revisions", Handler: quoteHandler.Revisions},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			})
		}
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
