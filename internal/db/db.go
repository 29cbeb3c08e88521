package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-manager-backend/config"
	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/model"
)

// AdminUsername is the reserved super-admin account name.
const AdminUsername = "admin"

// Init initializes the database connection, runs migrations and seeds the
// admin account.
func Init(cfg *config.DatabaseConfig, authCfg *config.AuthConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedAdmin(db, authCfg.AdminPassword, authCfg.BcryptCost); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Bed{},
		&model.Expense{},
		&model.Worker{},
		&model.RentHistory{},
		&model.PushSubscription{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

// SeedAdmin creates the super-admin account if it does not exist yet. An
// existing admin row is left untouched so a changed password survives
// restarts.
func SeedAdmin(db *gorm.DB, password string, bcryptCost int) error {
	var admin model.User
	err := db.Where("username = ?", AdminUsername).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}

	admin = model.User{
		Username:      AdminUsername,
		Password:      hash,
		IsAdmin:       true,
		IsApproved:    true,
		SetupComplete: true,
	}
	return db.Create(&admin).Error
}
