package company

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	companies.POST("", Create)
	companies.PUT("/:id", Update)
	companies.DELETE("/:id", Delete)
}
