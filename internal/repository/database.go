package repository

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/EliasSirvio/todo-backend-go/internal/config"
	"github.com/EliasSirvio/todo-backend-go/internal/models"
)

// NewDatabase opens the configured database and ensures the schema exists.
// The returned handle is shared by all repositories for the process lifetime.
func NewDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			cfg.SSLMode,
		)
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// Single connection: serializes writers, so lookup-then-insert
		// sequences inside a transaction cannot interleave.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}

// sqliteDSN enables foreign-key enforcement so join rows can never
// outlive the todo or tag they reference.
func sqliteDSN(path string) string {
	if path == "" {
		path = "todos.db"
	}
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// autoMigrate runs auto migration for all models
func autoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Todo{}, "Tags", &models.TodoTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Todos", &models.TodoTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.Todo{},
		&models.Tag{},
	)
}
