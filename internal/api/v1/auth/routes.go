package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", middleware.RateLimit("register", 5, time.Minute), Register)
	auth.POST("/login", middleware.RateLimit("login", 10, time.Minute), Login)
	auth.POST("/logout", middleware.AuthMiddleware(), Logout)
	auth.POST("/forgot-password", middleware.RateLimit("forgot_password", 3, time.Minute), ForgotPassword)
	auth.POST("/reset-password", ResetPassword)
	auth.GET("/me", middleware.AuthMiddleware(), Me)
}
