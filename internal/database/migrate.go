package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"careerfit/internal/logger"

	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
)

const migrationsDir = "database/migrations"

// RunMigrations replays every .up.sql file in lexical order.
func RunMigrations(db *sql.DB) error {
	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	l := logger.Get()
	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".up.sql") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(migrationsDir, file.Name()))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file.Name(), err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", file.Name(), err)
		}
		l.Info("Executed migration", zap.String("file", file.Name()))
	}

	l.Info("Migrations completed")
	return nil
}

// NewMigrateOracleDB opens a plain database/sql connection for migrations.
func NewMigrateOracleDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}
	return db, nil
}
