package main

import (
	"log"

	"github.com/Amitsjoysm/LEADGENIE/config"
	"github.com/Amitsjoysm/LEADGENIE/internal/api"
	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/pkg/logger"
)

// @title LeadGenie API
// @version 1.0
// @description B2B lead generation platform with credit-based contact reveals.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Company{},
		&models.Plan{},
		&models.CreditTransaction{},
		&models.RevealRecord{},
		&models.PaymentConfig{},
		&models.PaymentOrder{},
		&models.UploadTask{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	go services.StartUploadWorker()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
