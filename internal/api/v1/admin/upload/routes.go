package upload

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	up := router.Group("/upload")
	up.GET("/template/:kind", Template)
	up.POST("", Upload)
	up.GET("/:id", Status)
}
