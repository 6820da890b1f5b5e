package plan

import (
	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/middleware"
)

// RegisterRoutes registers the public plan catalogue; purchase requires
// authentication.
func RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	plans.GET("", List)
	plans.GET("/:id", Get)
	plans.POST("/:id/purchase", middleware.AuthMiddleware(), Purchase)
}
