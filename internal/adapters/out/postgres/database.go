// Package postgres opens the GORM connection to PostgreSQL and owns the schema
// of the order store.
//
// Usage:
//
//	db, err := postgres.Open(ctx, postgres.DSN(cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode))
//	if err != nil {
//	    return err
//	}
//	if err := postgres.Migrate(ctx, db); err != nil {
//	    return err
//	}
//	repo := orderrepo.NewGormOrderRepository(db)
package postgres

import (
	"context"
	"fmt"

	"pancakelab/internal/adapters/out/postgres/orderrepo"
	"pancakelab/internal/pkg/errs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a key/value connection string understood by the pgx driver.
func DSN(host, port, user, password, name, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}

// Open connects to PostgreSQL and checks the connection with a ping.
// GORM's own SQL logging is silenced; the store reports failures as errors.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("postgres", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("postgres", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errs.NewUnavailableErrorWithCause("postgres", err)
	}

	return db, nil
}

// Migrate creates or updates the orders, pancakes and ingredients tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(orderrepo.Models()...); err != nil {
		return fmt.Errorf("failed to migrate order schema: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
