package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"health-portal-server/internal/config"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/handlers"
	"health-portal-server/internal/middleware"
	"health-portal-server/internal/pages"
	"health-portal-server/internal/session"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store *session.Store, cfg *config.Config) {
	sessionHandler := handlers.NewSessionHandler(store, cfg)
	pageHandler := handlers.NewPageHandler()
	requireSession := middleware.SessionMiddleware(store, cfg)

	// Public routes (no session required)
	public := router.Group("/api/v1")
	{
		public.POST("/sessions", sessionHandler.CreateSession)
	}

	private := router.Group("/api/v1")
	private.Use(requireSession)
	{
		authRoutes := private.Group("/auth")
		{
			authRoutes.GET("", sessionHandler.GetAuth)
			authRoutes.POST("/login", sessionHandler.Login)
			authRoutes.POST("/logout", sessionHandler.Logout)
		}
		private.GET("/notifications", sessionHandler.GetNotifications)
	}

	// Page views and their actions. Pages share no parameters.
	router.GET(pages.PathHome, requireSession, pageHandler.GetHome)

	healthData := router.Group(pages.PathHealthData, requireSession)
	{
		healthData.GET("", pageHandler.GetHealthData)
		healthData.POST("/devices/connect", pageHandler.ConnectDevice)
		healthData.POST("/photo", pageHandler.TakePhoto)
		healthData.POST("/recording", pageHandler.ToggleRecording)
		healthData.PUT("/pain-level", pageHandler.SetPainLevel)
	}

	analysis := router.Group(pages.PathAnalysis, requireSession)
	{
		analysis.GET("", pageHandler.GetAnalysis)
		analysis.PUT("/age-range", pageHandler.SelectAgeRange)
		analysis.POST("/warnings/:index/suggestion", pageHandler.ShowSuggestion)
	}

	familyCare := router.Group(pages.PathFamilyCare, requireSession)
	{
		familyCare.GET("", pageHandler.GetFamilyCare)
		familyCare.POST("/checklist/:index/toggle", pageHandler.ToggleChecklistItem)
		familyCare.POST("/refresh", pageHandler.Refresh)
	}

	rehabilitation := router.Group(pages.PathRehabilitation, requireSession)
	{
		rehabilitation.GET("", pageHandler.GetRehabilitation)
		rehabilitation.PUT("/plan", pageHandler.SelectPlan)
		rehabilitation.PUT("/adjustment", pageHandler.SetAdjustment)
		rehabilitation.POST("/note/open", pageHandler.OpenNote)
		rehabilitation.POST("/note/cancel", pageHandler.CancelNote)
		rehabilitation.POST("/note", pageHandler.SubmitNote)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "sessions": store.Len()})
	})
}

// RegisteredPageRoutes returns the GET paths registered on router that are
// page views.
func RegisteredPageRoutes(router *gin.Engine) map[string]bool {
	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		if r.Method == "GET" && pages.IsPagePath(r.Path) {
			registered[r.Path] = true
		}
	}
	return registered
}

// WarnUnroutableLinks logs every home navigation link whose path the router
// does not serve. The links are left as they are.
func WarnUnroutableLinks(router *gin.Engine, catalog *fixtures.Catalog, logger *slog.Logger) int {
	registered := RegisteredPageRoutes(router)
	count := 0
	for _, f := range catalog.Features {
		if !registered[f.Path] {
			logger.Warn("navigation link points at an unregistered route", "title", f.Title, "path", f.Path)
			count++
		}
	}
	return count
}
