// Command admin resets the admin password hash stored in the tickets database.
//
//	go run ./utils/admin --password nueva-clave
//	go run ./utils/admin --clear
package main

import (
	"context"
	"log"

	"github.com/ARQAP/mesa-de-ayuda/src/config"
	"github.com/ARQAP/mesa-de-ayuda/src/db"
	"github.com/ARQAP/mesa-de-ayuda/src/logger"
	"github.com/ARQAP/mesa-de-ayuda/src/models"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	password := pflag.StringP("password", "p", "", "new admin password (at least 4 characters)")
	clearHash := pflag.Bool("clear", false, "remove the stored hash so ADMIN_PASS applies again")
	dataDir := pflag.String("data-dir", "", "override DATA_DIR")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	appLog := logger.New(cfg.LogLevel, "")
	defer func() { _ = appLog.Sync() }()

	if err := cfg.EnsureDataDir(); err != nil {
		appLog.Fatal("failed to prepare data directory", zap.Error(err))
	}

	database, err := db.Connect(cfg.DatabasePath(), appLog)
	if err != nil {
		appLog.Fatal("failed to connect database", zap.Error(err))
	}
	if err := db.Initialize(database); err != nil {
		appLog.Fatal("failed to initialize schema", zap.Error(err))
	}

	ctx := context.Background()
	settings := services.NewSettingService(database, cfg.AdminPassFallback, appLog)

	if *clearHash {
		if err := settings.DeleteSetting(ctx, models.SettingAdminPassHash); err != nil {
			appLog.Fatal("failed to clear admin password", zap.Error(err))
		}
		appLog.Info("Admin password hash removed, ADMIN_PASS fallback is active")
		return
	}

	if *password == "" {
		appLog.Fatal("either --password or --clear is required")
	}

	if err := settings.ResetAdminPassword(ctx, *password); err != nil {
		appLog.Fatal("failed to set admin password", zap.Error(err))
	}
	appLog.Info("Admin password updated", zap.String("database", cfg.DatabasePath()))
}
