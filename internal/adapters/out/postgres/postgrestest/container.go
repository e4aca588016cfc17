// Package postgrestest starts a throwaway PostgreSQL container with the
// record store schema for integration suites.
package postgrestest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dealerorders/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables in truncation order.
var tables = []string{"basket_items", "orders", "dealers", "items", "campaigns"}

// Database is a migrated database running in a container.
type Database struct {
	DB        *gorm.DB
	container *tcpostgres.PostgresContainer
}

// Start runs postgres:15-alpine, connects with the same gorm settings as
// the service and applies the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = d.Close(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = d.Close(ctx)
		return nil, err
	}
	d.DB = db

	if err = postgres.Migrate(db); err != nil {
		_ = d.Close(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ")).Error
}

// Close terminates the container.
func (d *Database) Close(ctx context.Context) error {
	if d.container == nil {
		return nil
	}
	return d.container.Terminate(ctx)
}
