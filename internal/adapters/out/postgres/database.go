package postgres

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/adapters/out/postgres/addressrepo"
	"fooddelivery/internal/adapters/out/postgres/menurepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings holds the connection parameters of the service database.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (s Settings) dsn(database string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		s.Host, s.Port, s.User, s.Password, database, s.SSLMode,
	)
}

// Open creates the database if it is missing, connects to it and migrates the schema.
func Open(ctx context.Context, s Settings) (*gorm.DB, error) {
	if err := ensureDatabase(ctx, s); err != nil {
		return nil, fmt.Errorf("ensure database %s: %w", s.Name, err)
	}

	db, err := gorm.Open(gormpostgres.Open(s.dsn(s.Name)), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", s.Name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", s.Name, err)
	}

	if err = AutoMigrate(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates every table owned by the service.
// It works on postgres and on the sqlite database used by tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&addressrepo.AddressDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}

func ensureDatabase(ctx context.Context, s Settings) error {
	admin, err := gorm.Open(gormpostgres.Open(s.dsn("postgres")), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return err
	}

	sqlDB, err := admin.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var exists bool
	err = admin.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", s.Name).
		Scan(&exists).Error
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return admin.WithContext(ctx).Exec("CREATE DATABASE " + pq.QuoteIdentifier(s.Name)).Error
}
