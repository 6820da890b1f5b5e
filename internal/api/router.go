package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Amitsjoysm/LEADGENIE/config"
	_ "github.com/Amitsjoysm/LEADGENIE/docs"
	adminCompany "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/company"
	adminPayment "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/payment"
	adminPlan "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/plan"
	adminProfile "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/profile"
	adminTransaction "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/transaction"
	adminUpload "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/upload"
	adminUser "github.com/Amitsjoysm/LEADGENIE/internal/api/v1/admin/user"
	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/auth"
	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/company"
	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/credits"
	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/payment"
	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/plan"
	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/profile"
	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/middleware"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.GinLogger(), middleware.GinRecovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, utils.NewSuccessResponse("ok", nil))
	})

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)
		plan.RegisterRoutes(v1)
		payment.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			credits.RegisterRoutes(authorized)
			profile.RegisterRoutes(authorized)
			company.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
			adminProfile.RegisterRoutes(admin)
			adminCompany.RegisterRoutes(admin)
			adminPlan.RegisterRoutes(admin)
			adminPayment.RegisterRoutes(admin)
			adminUpload.RegisterRoutes(admin)
		}
	}

	return router, nil
}
