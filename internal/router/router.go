package router

import (
	"github.com/anonto42/connectly/web/internal/apiclient"
	"github.com/anonto42/connectly/web/internal/cache"
	"github.com/anonto42/connectly/web/internal/handlers"
	"github.com/anonto42/connectly/web/internal/middleware"
	"github.com/anonto42/connectly/web/internal/session"
	"github.com/anonto42/connectly/web/internal/views"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ServiceName is reported by the health endpoint
const ServiceName = "connectly-web"

// Deps are the collaborators the routes wire into handlers
type Deps struct {
	API         apiclient.API
	Sessions    *session.Store
	LatestPosts cache.LatestPostStore
	Header      views.HeaderOptions
	LoginAlerts bool
	SearchPath  string
	Logger      *zap.Logger
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, d Deps) {
	// --- Unprotected routes: health and login ---
	public := e.Group("")

	// --- Protected pages (require a session token) ---
	pages := e.Group("")
	pages.Use(middleware.RequireSession(d.Sessions, handlers.LoginPath, d.Logger))

	handlers.NewHealthHandler(ServiceName).RegisterHealthRoutes(public)

	authHandler := handlers.NewAuthHandler(d.API, d.Sessions, d.Header, d.LoginAlerts, d.Logger)
	authHandler.RegisterAuthRoutes(public, pages)
	d.Logger.Debug("Auth routes configured.")

	profileHandler := handlers.NewProfileHandler(d.API, d.Header, d.Logger)
	profileHandler.RegisterProfileRoutes(pages)
	d.Logger.Debug("Profile routes configured.")

	postHandler := handlers.NewPostHandler(d.API, d.LatestPosts, d.Sessions, d.Header, d.Logger)
	postHandler.RegisterPostRoutes(pages)
	d.Logger.Debug("Post routes configured.")

	searchHandler := handlers.NewSearchHandler(d.SearchPath)
	searchHandler.RegisterSearchRoutes(pages)

	d.Logger.Info("All routes configured.", zap.Int("routes", len(e.Routes())))
}
