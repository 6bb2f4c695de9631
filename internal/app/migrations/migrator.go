package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/campuslink/internal/db"
)

const (
	createMigrationTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	migrationAppliedSQL = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	recordMigrationSQL  = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

// Migrator manages database migrations
type Migrator struct {
	db     db.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(pool db.Pool, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     pool,
		logger: logger,
	}
}

// Migrate applies every *.sql file at the root of fsys in lexical order.
// Each file runs in its own transaction together with its schema_migrations row.
func (m *Migrator) Migrate(ctx context.Context, fsys fs.FS) error {
	if _, err := m.db.Exec(ctx, createMigrationTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		if err := m.apply(ctx, fsys, file); err != nil {
			return err
		}
	}
	return nil
}

// versionOf extracts the version from a filename ("001_init.sql" => "001")
func versionOf(file string) string {
	name := path.Base(file)
	if i := strings.Index(name, "_"); i > 0 {
		return name[:i]
	}
	return strings.TrimSuffix(name, ".sql")
}

func (m *Migrator) apply(ctx context.Context, fsys fs.FS, file string) error {
	version := versionOf(file)

	var applied bool
	if err := m.db.QueryRow(ctx, migrationAppliedSQL, version).Scan(&applied); err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if applied {
		m.logger.Debug().Str("file", file).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", file, err)
	}

	err = db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error executing migration %s: %w", file, err)
		}
		if _, err := tx.Exec(ctx, recordMigrationSQL, version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", file, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("file", file).Str("version", version).Msg("Migration applied")
	return nil
}
