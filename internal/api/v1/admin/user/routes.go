package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.GET("", List)
	users.GET("/:id", Get)
	users.PUT("/:id", Update)
	users.DELETE("/:id", Delete)
	users.POST("/:id/credits", AdjustCredits)
}
