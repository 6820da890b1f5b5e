package profile

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	profiles.POST("/search", Search)
	profiles.GET("/:id", Get)
	profiles.POST("/:id/reveal", Reveal)
}
