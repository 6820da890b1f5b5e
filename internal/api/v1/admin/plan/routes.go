package plan

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	plans.POST("", Create)
	plans.GET("", List)
	plans.PUT("/:id", Update)
	plans.DELETE("/:id", Delete)
}
