package main

import (
	"context"
	"log"

	"github.com/ARQAP/mesa-de-ayuda/src/config"
	"github.com/ARQAP/mesa-de-ayuda/src/db"
	"github.com/ARQAP/mesa-de-ayuda/src/logger"
	"github.com/ARQAP/mesa-de-ayuda/src/routes"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/ARQAP/mesa-de-ayuda/src/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	appLog := logger.New(cfg.LogLevel, cfg.LogPath)
	defer func() { _ = appLog.Sync() }()

	if err := cfg.EnsureDataDir(); err != nil {
		appLog.Fatal("Error preparing data directory", zap.Error(err))
	}

	// Database connection
	database, err := db.Connect(cfg.DatabasePath(), appLog)
	if err != nil {
		appLog.Fatal("Error connecting to database", zap.Error(err))
	}

	// Schema setup
	if err := db.Initialize(database); err != nil {
		appLog.Fatal("Error during schema initialization", zap.Error(err))
	}

	// Services setup
	ticketService := services.NewTicketService(database)
	settingService := services.NewSettingService(database, cfg.AdminPassFallback, appLog)

	var uploader services.FileUploader
	if cfg.DriveEnabled() {
		driveUploader, err := utils.NewGoogleDriveUploader(context.Background(),
			cfg.DriveCredentialsPath, cfg.DriveCredentialsJSON, cfg.DriveFolderID, appLog)
		if err != nil {
			appLog.Warn("Google Drive backups disabled", zap.Error(err))
		} else {
			uploader = driveUploader
		}
	}
	backupService := services.NewBackupService(ticketService, uploader, appLog)

	// Router setup
	gin.SetMode(cfg.GinMode)
	router, err := routes.SetupRouter(routes.Dependencies{
		Tickets:     ticketService,
		Settings:    settingService,
		Backups:     backupService,
		Log:         appLog,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		appLog.Fatal("Error building router", zap.Error(err))
	}

	// Server run
	appLog.Info("Server starting", zap.String("host", cfg.ServerHost), zap.Bool("drive_backups", backupService.Enabled()))
	if err := router.Run(cfg.ServerHost); err != nil {
		appLog.Fatal("Error starting server", zap.String("host", cfg.ServerHost), zap.Error(err))
	}
}
