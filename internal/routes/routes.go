package routes

import (
	"net/http"

	"sahyogjeevan/internal/handlers"
	"sahyogjeevan/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires all HTTP routes. uploadsDir is served statically
// under /uploads so stored job images are reachable by URL.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
	}

	ginRouter.Static("/uploads", uploadsDir)

	ginRouter.GET("/healthz", healthCheck)
}

// healthCheck reports readiness. When the connection pool is available in
// the gin context it is pinged, so a dead database turns up as 503.
func healthCheck(c *gin.Context) {
	if v, ok := c.Get(string(contextkeys.DBContextKey)); ok {
		if db, ok := v.(*gorm.DB); ok {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
