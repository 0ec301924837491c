package routes

import (
	"net/http"
	"time"

	"studyplan/handlers"
	"studyplan/middleware"
	"studyplan/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers the study session resource.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/sessions")
	{
		api.Use(auth)
		api.POST("", hb.CreateSessionHandler)
		api.POST("/bulk", hb.BulkCreateSessionsHandler)
		api.GET("", hb.ListSessionsHandler)
		api.GET("/:id", hb.GetSessionHandler)
		api.PATCH("/:id", hb.UpdateSessionHandler)
		api.POST("/:id/start", hb.StartSessionHandler)
		api.POST("/:id/complete", hb.CompleteSessionHandler)
		api.DELETE("/:id", hb.DeleteSessionHandler)
	}
}

// RegisterPlannerRoutes registers suggestion and planning endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/planner")
	{
		api.Use(auth)
		api.POST("/suggest", hb.SuggestHandler)
		api.POST("/plan", hb.PlanHandler)
		api.POST("/template", hb.TemplateHandler)
		api.POST("/distribute", hb.DistributeHandler)
	}
}

// RegisterCalendarRoutes registers week, capacity and stats endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/calendar")
	{
		api.Use(auth)
		api.GET("/week", hb.WeekHandler)
		api.GET("/capacity", hb.CapacityHandler)
		api.PUT("/capacity/:day", hb.SetCapacityHandler)
		api.GET("/stats", hb.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.JWTAuthUserMiddleware()
	RegisterSessionRoutes(r, hb, auth)
	RegisterPlannerRoutes(r, hb, auth)
	RegisterCalendarRoutes(r, hb, auth)
	RegisterHealthRoute(r, hb)

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Not Found", "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
}
