package db

import (
	"fmt"

	"github.com/ARQAP/mesa-de-ayuda/src/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// additiveColumns are columns added to tickets after the first release.
// They are created on startup when missing; nothing is ever dropped.
var additiveColumns = []string{"Observaciones"}

// Connect opens the SQLite store at path. The pool is limited to a single
// connection because SQLite allows one writer at a time.
func Connect(path string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error("Error al conectar a la base de datos", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		return nil, fmt.Errorf("no se pudo configurar busy_timeout: %w", err)
	}

	log.Info("Base de datos de tickets conectada", zap.String("path", path))
	return db, nil
}

// Initialize creates the tables and the (cubiculo, status) index if they do not
// exist and adds any missing additive column. Safe to run on every startup.
func Initialize(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&models.TicketModel{}) {
		if err := migrator.CreateTable(&models.TicketModel{}); err != nil {
			return fmt.Errorf("creando tabla tickets: %w", err)
		}
	}
	if !migrator.HasTable(&models.SettingModel{}) {
		if err := migrator.CreateTable(&models.SettingModel{}); err != nil {
			return fmt.Errorf("creando tabla settings: %w", err)
		}
	}

	for _, column := range additiveColumns {
		if migrator.HasColumn(&models.TicketModel{}, column) {
			continue
		}
		if err := migrator.AddColumn(&models.TicketModel{}, column); err != nil {
			return fmt.Errorf("agregando columna %s: %w", column, err)
		}
	}

	if !migrator.HasIndex(&models.TicketModel{}, "idx_ticket_cub_status") {
		if err := migrator.CreateIndex(&models.TicketModel{}, "idx_ticket_cub_status"); err != nil {
			return fmt.Errorf("creando índice idx_ticket_cub_status: %w", err)
		}
	}

	return nil
}
