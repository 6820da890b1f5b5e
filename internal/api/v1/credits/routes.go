package credits

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	credits := router.Group("/credits")
	credits.GET("/balance", GetBalance)
	credits.GET("/transactions", ListTransactions)
}
