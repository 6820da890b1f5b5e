package company

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	companies.POST("/search", Search)
	companies.GET("/:id", Get)
}
