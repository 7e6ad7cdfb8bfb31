package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/stayforge/hotel-booking-service/pkg/log"
)

const (
	migrationLockID = 4217

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type MigrationSource interface {
	fs.ReadDirFS
}

func FSMigrations(fsys fs.ReadDirFS) MigrationSource {
	return fsys
}

type Migrator struct {
	db     Database
	logger log.Logger
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Execute runs on a single pinned connection: advisory locks are
// session-scoped, so lock and unlock must see the same session, not
// whichever pooled connection is free.
func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	conn, err := m.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("get migration connection: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, migrationLockID)
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}
	defer func() {
		var released bool
		unlockErr := conn.GetContext(ctx, &released, `SELECT pg_advisory_unlock($1)`, migrationLockID)
		if unlockErr != nil || !released {
			m.logger.WithError(unlockErr).Error(ctx, "failed to release migration lock")
		}
	}()

	_, err = conn.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		if err = m.performSourceMigrations(ctx, conn, source); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) performSourceMigrations(ctx context.Context, conn *sqlx.Conn, source MigrationSource) error {
	migrationIDs, err := m.getFileNames(source)
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx, conn)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := fs.ReadFile(source, migrationID)
		if err != nil {
			return fmt.Errorf("read migration sql: %w", err)
		}

		err = m.performMigration(ctx, conn, migrationID, string(migrationSQL))
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}
	return nil
}

func (m *Migrator) performMigration(ctx context.Context, conn *sqlx.Conn, migrationID, migrationSQL string) error {
	if migrationSQL == "" {
		return errors.New("empty migration")
	}

	_, err := conn.ExecContext(ctx, migrationSQL)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	return err
}

func (m *Migrator) getFileNames(source MigrationSource) ([]string, error) {
	entries, err := source.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)
	return result, nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context, conn *sqlx.Conn) (map[string]struct{}, error) {
	var ids []string
	err := conn.SelectContext(ctx, &ids, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}
