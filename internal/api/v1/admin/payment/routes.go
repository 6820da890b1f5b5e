package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	pay := router.Group("/payment")
	pay.POST("/configs", CreateConfig)
	pay.POST("/orders/complete", CompleteOrder)
}
