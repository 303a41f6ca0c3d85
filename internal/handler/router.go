package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leadgate/internal/domain/business"
	"leadgate/internal/handler/api"
	"leadgate/internal/handler/middleware"
	"leadgate/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	quoteHandler *api.QuoteHandler,
	leadHandler *api.LeadHandler,
	creditHandler *api.CreditHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, quoteHandler, leadHandler, creditHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	quoteHandler *api.QuoteHandler,
	leadHandler *api.LeadHandler,
	creditHandler *api.CreditHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Consumer-facing quote intake; no account needed.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.SubmitQuote},
		})

		leads := apiGroup.Group("/leads")
		leads.Use(authMiddleware.RequireAuth())
		{
			addRoutes(leads, []route{
				{Method: http.MethodGet, Path: "", Handler: leadHandler.ListLeads},
				{Method: http.MethodGet, Path: "/:id", Handler: leadHandler.GetLead},
				{Method: http.MethodPost, Path: "/:id/reveal", Handler: leadHandler.RevealLead},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: leadHandler.SetStatus},
			})
		}

		credits := apiGroup.Group("/credits")
		credits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(credits, []route{
				{Method: http.MethodGet, Path: "/balance", Handler: creditHandler.GetBalance},
				{Method: http.MethodGet, Path: "/transactions", Handler: creditHandler.ListTransactions},
				{
					Method:  http.MethodPost,
					Path:    "/grants",
					Handler: creditHandler.GrantCredits,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(business.RoleAdmin)},
				},
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
