package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	pay := router.Group("/payment")
	pay.GET("/methods", middleware.AuthMiddleware(), ListMethods)
	// Gateway callback, signature-verified rather than authenticated
	pay.GET("/notify/:uuid", Notify)
	pay.POST("/notify/:uuid", Notify)
}
