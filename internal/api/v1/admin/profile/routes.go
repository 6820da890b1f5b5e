package profile

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	profiles.POST("", Create)
	profiles.GET("/:id", Get)
	profiles.PUT("/:id", Update)
	profiles.DELETE("/:id", Delete)
}
